package service

import (
	"github.com/darleneayinkamiye/mobility-backend-go/internal/models"
	"github.com/darleneayinkamiye/mobility-backend-go/internal/ranking"
	"github.com/darleneayinkamiye/mobility-backend-go/internal/repository"
)

// RankingService handles business logic for zone rankings
type RankingService struct {
	statsRepo *repository.StatsRepository
	zoneRepo  *repository.ZoneRepository
}

// NewRankingService creates a new ranking service
func NewRankingService(statsRepo *repository.StatsRepository, zoneRepo *repository.ZoneRepository) *RankingService {
	return &RankingService{
		statsRepo: statsRepo,
		zoneRepo:  zoneRepo,
	}
}

// GetTopPickupZones returns the k busiest pickup zones annotated with zone
// names from the lookup table. Zones missing from the lookup keep an empty
// name rather than being dropped, so counts always reconcile with the trips
// table.
func (s *RankingService) GetTopPickupZones(k int) (*models.TopZonesResult, error) {
	counts, err := s.statsRepo.GetPickupZoneCounts()
	if err != nil {
		return nil, err
	}

	top, err := ranking.TopK(counts, k)
	if err != nil {
		return nil, err
	}

	zoneMap, err := s.zoneRepo.GetZoneMap()
	if err != nil {
		return nil, err
	}

	ranked := make([]models.RankedZone, 0, len(top))
	for i, zc := range top {
		rz := models.RankedZone{
			Rank:   i + 1,
			ZoneID: zc.ZoneID,
			Count:  zc.Count,
		}
		if z, ok := zoneMap[zc.ZoneID]; ok {
			rz.ZoneName = z.ZoneName
			rz.Borough = z.Borough
		}
		ranked = append(ranked, rz)
	}

	return &models.TopZonesResult{K: k, Zones: ranked}, nil
}
