package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/darleneayinkamiye/mobility-backend-go/internal/ingest"
	"github.com/darleneayinkamiye/mobility-backend-go/internal/models"
	"github.com/darleneayinkamiye/mobility-backend-go/internal/pipeline"
	"github.com/darleneayinkamiye/mobility-backend-go/internal/repository"
)

// IngestService orchestrates a full load: read the raw CSVs, run the
// cleaning pipeline, and persist the survivors with an audit trail.
type IngestService struct {
	tripRepo   *repository.TripRepository
	zoneRepo   *repository.ZoneRepository
	reportRepo *repository.ReportRepository
	thresholds pipeline.Thresholds
}

// NewIngestService creates a new ingest service
func NewIngestService(
	tripRepo *repository.TripRepository,
	zoneRepo *repository.ZoneRepository,
	reportRepo *repository.ReportRepository,
	thresholds pipeline.Thresholds,
) *IngestService {
	return &IngestService{
		tripRepo:   tripRepo,
		zoneRepo:   zoneRepo,
		reportRepo: reportRepo,
		thresholds: thresholds,
	}
}

// LoadZones reads the zone lookup CSV and replaces the stored lookup table
func (s *IngestService) LoadZones(path string) (int, error) {
	zones, err := ingest.ReadZonesFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read zone lookup: %w", err)
	}
	if len(zones) == 0 {
		return 0, fmt.Errorf("zone lookup %s contains no usable rows", path)
	}

	if err := s.zoneRepo.ReplaceAll(zones); err != nil {
		return 0, err
	}

	log.Printf("[IngestService] loaded %d zones from %s", len(zones), path)
	return len(zones), nil
}

// RunCleaning reads raw trips from the given CSV, cleans them against the
// stored zone lookup, and replaces the trips table with the survivors.
// The per-stage removal tallies are persisted as a cleaning run.
func (s *IngestService) RunCleaning(tripsPath string) (*models.CleaningRun, error) {
	zones, err := s.zoneRepo.GetZones()
	if err != nil {
		return nil, err
	}
	if len(zones) == 0 {
		return nil, fmt.Errorf("zone lookup is empty, load zones before cleaning")
	}

	raw, err := ingest.ReadTripsFile(tripsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read raw trips: %w", err)
	}

	startedAt := time.Now().UTC()
	log.Printf("[IngestService] cleaning %d raw records from %s", len(raw), tripsPath)

	cleaned, report, err := pipeline.Clean(raw, models.NewValidZoneSet(zones), s.thresholds)
	if err != nil {
		return nil, err
	}

	if err := s.tripRepo.DeleteAll(); err != nil {
		return nil, err
	}
	if err := s.tripRepo.InsertBatch(cleaned); err != nil {
		return nil, err
	}

	run := models.CleaningRun{
		RunID:         uuid.New().String(),
		StartedAt:     startedAt,
		FinishedAt:    time.Now().UTC(),
		SourceFile:    tripsPath,
		InputCount:    report.InputCount,
		SurvivorCount: report.SurvivorCount,
		Stages:        report.Stages,
	}
	if err := s.reportRepo.SaveRun(run); err != nil {
		return nil, err
	}

	log.Printf("[IngestService] run %s: %d in, %d removed, %d kept",
		run.RunID, report.InputCount, report.TotalRemoved(), report.SurvivorCount)

	return &run, nil
}

// GetLatestRun returns the most recent cleaning run
func (s *IngestService) GetLatestRun() (*models.CleaningRun, error) {
	return s.reportRepo.GetLatestRun()
}

// GetRuns returns all cleaning runs, newest first
func (s *IngestService) GetRuns() ([]models.CleaningRun, error) {
	return s.reportRepo.GetRuns()
}
