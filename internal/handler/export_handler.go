package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/darleneayinkamiye/mobility-backend-go/internal/service"
	"github.com/darleneayinkamiye/mobility-backend-go/pkg/response"
)

// ExportHandler handles HTTP requests for CSV exports
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportAll handles POST /api/v1/exports
func (h *ExportHandler) ExportAll(c *gin.Context) {
	k := 0
	if kStr := c.Query("k"); kStr != "" {
		parsed, err := strconv.Atoi(kStr)
		if err != nil {
			response.BadRequest(c, "Invalid k parameter")
			return
		}
		k = parsed
	}

	paths, err := h.exportService.ExportAll(k)
	if err != nil {
		response.InternalError(c, "Export failed", err)
		return
	}

	response.Success(c, gin.H{"files": paths})
}
