package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/darleneayinkamiye/mobility-backend-go/internal/service"
	"github.com/darleneayinkamiye/mobility-backend-go/pkg/response"
)

// ValidationHandler handles HTTP requests for data quality reports
type ValidationHandler struct {
	validationService *service.ValidationService
}

// NewValidationHandler creates a new validation handler
func NewValidationHandler(validationService *service.ValidationService) *ValidationHandler {
	return &ValidationHandler{validationService: validationService}
}

// GetReport handles GET /api/v1/validation/report
func (h *ValidationHandler) GetReport(c *gin.Context) {
	report, err := h.validationService.BuildReport()
	if err != nil {
		response.InternalError(c, "Failed to build validation report", err)
		return
	}

	response.Success(c, gin.H{
		"passed": report.Passed(),
		"report": report,
	})
}
