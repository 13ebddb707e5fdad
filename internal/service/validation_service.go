package service

import (
	"github.com/darleneayinkamiye/mobility-backend-go/internal/models"
	"github.com/darleneayinkamiye/mobility-backend-go/internal/pipeline"
	"github.com/darleneayinkamiye/mobility-backend-go/internal/repository"
	"github.com/darleneayinkamiye/mobility-backend-go/internal/validation"
)

// ValidationService builds quality reports over the stored trips
type ValidationService struct {
	tripRepo   *repository.TripRepository
	zoneRepo   *repository.ZoneRepository
	thresholds pipeline.Thresholds
}

// NewValidationService creates a new validation service
func NewValidationService(
	tripRepo *repository.TripRepository,
	zoneRepo *repository.ZoneRepository,
	thresholds pipeline.Thresholds,
) *ValidationService {
	return &ValidationService{
		tripRepo:   tripRepo,
		zoneRepo:   zoneRepo,
		thresholds: thresholds,
	}
}

// BuildReport validates every stored trip against the cleaning bounds
func (s *ValidationService) BuildReport() (*validation.Report, error) {
	trips, err := s.tripRepo.GetAll()
	if err != nil {
		return nil, err
	}

	zones, err := s.zoneRepo.GetZones()
	if err != nil {
		return nil, err
	}

	return validation.BuildReport(trips, models.NewValidZoneSet(zones), s.thresholds), nil
}
