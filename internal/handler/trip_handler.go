package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/darleneayinkamiye/mobility-backend-go/internal/models"
	"github.com/darleneayinkamiye/mobility-backend-go/internal/service"
	"github.com/darleneayinkamiye/mobility-backend-go/pkg/response"
)

// TripHandler handles HTTP requests for cleaned trips
type TripHandler struct {
	tripService *service.TripService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(tripService *service.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// GetTrips handles GET /api/v1/trips
func (h *TripHandler) GetTrips(c *gin.Context) {
	var filter models.TripFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.tripService.GetTrips(filter)
	if err != nil {
		response.InternalError(c, "Failed to query trips", err)
		return
	}

	response.Success(c, result)
}

// GetTripByID handles GET /api/v1/trips/:id
func (h *TripHandler) GetTripByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid trip ID")
		return
	}

	trip, err := h.tripService.GetTripByID(id)
	if err != nil {
		response.InternalError(c, "Failed to get trip", err)
		return
	}
	if trip == nil {
		response.NotFound(c, "Trip not found")
		return
	}

	response.Success(c, trip)
}
