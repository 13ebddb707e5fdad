package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/darleneayinkamiye/mobility-backend-go/internal/service"
	"github.com/darleneayinkamiye/mobility-backend-go/pkg/response"
)

// IngestHandler handles HTTP requests for data loading and cleaning runs
type IngestHandler struct {
	ingestService *service.IngestService
	zonesCSV      string
	tripsCSV      string
}

// NewIngestHandler creates a new ingest handler. The CSV paths are the
// configured defaults, overridable per request.
func NewIngestHandler(ingestService *service.IngestService, zonesCSV, tripsCSV string) *IngestHandler {
	return &IngestHandler{
		ingestService: ingestService,
		zonesCSV:      zonesCSV,
		tripsCSV:      tripsCSV,
	}
}

type ingestRequest struct {
	Path string `json:"path"`
}

// LoadZones handles POST /api/v1/ingest/zones
func (h *IngestHandler) LoadZones(c *gin.Context) {
	req := ingestRequest{Path: h.zonesCSV}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body")
			return
		}
	}

	count, err := h.ingestService.LoadZones(req.Path)
	if err != nil {
		response.InternalError(c, "Failed to load zones", err)
		return
	}

	response.Success(c, gin.H{"zones_loaded": count, "source": req.Path})
}

// RunCleaning handles POST /api/v1/ingest/run
func (h *IngestHandler) RunCleaning(c *gin.Context) {
	req := ingestRequest{Path: h.tripsCSV}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body")
			return
		}
	}

	run, err := h.ingestService.RunCleaning(req.Path)
	if err != nil {
		response.InternalError(c, "Cleaning run failed", err)
		return
	}

	response.Success(c, run)
}

// GetRuns handles GET /api/v1/ingest/runs
func (h *IngestHandler) GetRuns(c *gin.Context) {
	runs, err := h.ingestService.GetRuns()
	if err != nil {
		response.InternalError(c, "Failed to list cleaning runs", err)
		return
	}

	response.Success(c, runs)
}

// GetLatestRun handles GET /api/v1/ingest/runs/latest
func (h *IngestHandler) GetLatestRun(c *gin.Context) {
	run, err := h.ingestService.GetLatestRun()
	if err != nil {
		response.InternalError(c, "Failed to get latest run", err)
		return
	}
	if run == nil {
		response.NotFound(c, "No cleaning runs recorded yet")
		return
	}

	response.Success(c, run)
}
