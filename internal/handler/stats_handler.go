package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/darleneayinkamiye/mobility-backend-go/internal/service"
	"github.com/darleneayinkamiye/mobility-backend-go/pkg/response"
)

// StatsHandler handles HTTP requests for statistics
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetOverallSummary handles GET /api/v1/stats/summary
func (h *StatsHandler) GetOverallSummary(c *gin.Context) {
	summary, err := h.statsService.GetOverallSummary()
	if err != nil {
		response.InternalError(c, "Failed to get summary", err)
		return
	}

	response.Success(c, summary)
}

// GetHourlySummary handles GET /api/v1/stats/hourly
func (h *StatsHandler) GetHourlySummary(c *gin.Context) {
	rows, err := h.statsService.GetHourlySummary()
	if err != nil {
		response.InternalError(c, "Failed to get hourly summary", err)
		return
	}

	response.Success(c, rows)
}

// GetBoroughBreakdown handles GET /api/v1/stats/boroughs
func (h *StatsHandler) GetBoroughBreakdown(c *gin.Context) {
	rows, err := h.statsService.GetBoroughBreakdown()
	if err != nil {
		response.InternalError(c, "Failed to get borough breakdown", err)
		return
	}

	response.Success(c, rows)
}

// GetTimeOfDayDemand handles GET /api/v1/stats/time-of-day
func (h *StatsHandler) GetTimeOfDayDemand(c *gin.Context) {
	rows, err := h.statsService.GetTimeOfDayDemand()
	if err != nil {
		response.InternalError(c, "Failed to get time-of-day demand", err)
		return
	}

	response.Success(c, rows)
}

// GetDailyPattern handles GET /api/v1/stats/daily-pattern
func (h *StatsHandler) GetDailyPattern(c *gin.Context) {
	rows, err := h.statsService.GetDailyPattern()
	if err != nil {
		response.InternalError(c, "Failed to get daily pattern", err)
		return
	}

	response.Success(c, rows)
}

// GetPeakOffPeak handles GET /api/v1/stats/peak
func (h *StatsHandler) GetPeakOffPeak(c *gin.Context) {
	rows, err := h.statsService.GetPeakOffPeak()
	if err != nil {
		response.InternalError(c, "Failed to get peak comparison", err)
		return
	}

	response.Success(c, rows)
}

// GetHourlySpeedProfile handles GET /api/v1/stats/speed-profile
func (h *StatsHandler) GetHourlySpeedProfile(c *gin.Context) {
	rows, err := h.statsService.GetHourlySpeedProfile()
	if err != nil {
		response.InternalError(c, "Failed to get speed profile", err)
		return
	}

	response.Success(c, rows)
}
