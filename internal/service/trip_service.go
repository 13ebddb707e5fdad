package service

import (
	"github.com/darleneayinkamiye/mobility-backend-go/internal/models"
	"github.com/darleneayinkamiye/mobility-backend-go/internal/repository"
)

// TripService handles business logic for cleaned trips
type TripService struct {
	tripRepo *repository.TripRepository
}

// NewTripService creates a new trip service
func NewTripService(tripRepo *repository.TripRepository) *TripService {
	return &TripService{tripRepo: tripRepo}
}

// GetTrips retrieves trips matching the filter, with pagination metadata
func (s *TripService) GetTrips(filter models.TripFilter) (*models.TripsResponse, error) {
	trips, total, err := s.tripRepo.GetTrips(filter)
	if err != nil {
		return nil, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 100
	}
	if pageSize > 1000 {
		pageSize = 1000
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}

	return &models.TripsResponse{
		Data:       trips,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// GetTripByID retrieves a single trip, nil when not found
func (s *TripService) GetTripByID(id int64) (*models.CleanedTrip, error) {
	return s.tripRepo.GetTripByID(id)
}
