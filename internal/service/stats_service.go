package service

import (
	"github.com/darleneayinkamiye/mobility-backend-go/internal/models"
	"github.com/darleneayinkamiye/mobility-backend-go/internal/repository"
)

// StatsService handles business logic for trip statistics
type StatsService struct {
	statsRepo *repository.StatsRepository
}

// NewStatsService creates a new stats service
func NewStatsService(statsRepo *repository.StatsRepository) *StatsService {
	return &StatsService{statsRepo: statsRepo}
}

// GetOverallSummary retrieves dataset-wide averages
func (s *StatsService) GetOverallSummary() (*models.OverallSummary, error) {
	return s.statsRepo.GetOverallSummary()
}

// GetHourlySummary retrieves per-hour trip statistics
func (s *StatsService) GetHourlySummary() ([]models.HourlySummary, error) {
	return s.statsRepo.GetHourlySummary()
}

// GetBoroughBreakdown retrieves per-borough trip statistics
func (s *StatsService) GetBoroughBreakdown() ([]models.BoroughSummary, error) {
	return s.statsRepo.GetBoroughBreakdown()
}

// GetTimeOfDayDemand retrieves demand by time-of-day bucket
func (s *StatsService) GetTimeOfDayDemand() ([]models.TimeOfDaySummary, error) {
	return s.statsRepo.GetTimeOfDayDemand()
}

// GetDailyPattern retrieves the weekday/weekend comparison
func (s *StatsService) GetDailyPattern() ([]models.DayTypeSummary, error) {
	return s.statsRepo.GetDailyPattern()
}

// GetPeakOffPeak retrieves the rush-hour comparison
func (s *StatsService) GetPeakOffPeak() ([]models.PeriodSummary, error) {
	return s.statsRepo.GetPeakOffPeak()
}

// GetHourlySpeedProfile retrieves average speed per pickup hour
func (s *StatsService) GetHourlySpeedProfile() ([]models.HourlySpeed, error) {
	return s.statsRepo.GetHourlySpeedProfile()
}
