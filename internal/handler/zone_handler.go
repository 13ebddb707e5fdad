package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/darleneayinkamiye/mobility-backend-go/internal/repository"
	"github.com/darleneayinkamiye/mobility-backend-go/internal/service"
	"github.com/darleneayinkamiye/mobility-backend-go/pkg/response"
)

// ZoneHandler handles HTTP requests for the zone lookup and rankings
type ZoneHandler struct {
	zoneRepo       *repository.ZoneRepository
	rankingService *service.RankingService
	defaultK       int
}

// NewZoneHandler creates a new zone handler
func NewZoneHandler(zoneRepo *repository.ZoneRepository, rankingService *service.RankingService, defaultK int) *ZoneHandler {
	return &ZoneHandler{
		zoneRepo:       zoneRepo,
		rankingService: rankingService,
		defaultK:       defaultK,
	}
}

// GetZones handles GET /api/v1/zones
func (h *ZoneHandler) GetZones(c *gin.Context) {
	zones, err := h.zoneRepo.GetZones()
	if err != nil {
		response.InternalError(c, "Failed to query zones", err)
		return
	}

	response.Success(c, zones)
}

// GetTopPickupZones handles GET /api/v1/zones/top
func (h *ZoneHandler) GetTopPickupZones(c *gin.Context) {
	k := h.defaultK
	if kStr := c.Query("k"); kStr != "" {
		parsed, err := strconv.Atoi(kStr)
		if err != nil {
			response.BadRequest(c, "Invalid k parameter")
			return
		}
		k = parsed
	}

	result, err := h.rankingService.GetTopPickupZones(k)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, result)
}
