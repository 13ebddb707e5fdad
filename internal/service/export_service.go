package service

import (
	"fmt"
	"log"

	"github.com/darleneayinkamiye/mobility-backend-go/internal/export"
	"github.com/darleneayinkamiye/mobility-backend-go/internal/repository"
)

// ExportService writes the summary CSV bundle to disk
type ExportService struct {
	statsRepo  *repository.StatsRepository
	reportRepo *repository.ReportRepository
	ranking    *RankingService
	writer     *export.Writer
	defaultK   int
}

// NewExportService creates a new export service
func NewExportService(
	statsRepo *repository.StatsRepository,
	reportRepo *repository.ReportRepository,
	ranking *RankingService,
	writer *export.Writer,
	defaultK int,
) *ExportService {
	return &ExportService{
		statsRepo:  statsRepo,
		reportRepo: reportRepo,
		ranking:    ranking,
		writer:     writer,
		defaultK:   defaultK,
	}
}

// ExportAll writes every summary CSV and returns the written file paths.
// The cleaning stats file is skipped when no run has been recorded yet.
func (s *ExportService) ExportAll(k int) ([]string, error) {
	if k <= 0 {
		k = s.defaultK
	}

	var paths []string

	hourly, err := s.statsRepo.GetHourlySummary()
	if err != nil {
		return nil, err
	}
	p, err := s.writer.WriteHourlySummary(hourly)
	if err != nil {
		return nil, err
	}
	paths = append(paths, p)

	boroughs, err := s.statsRepo.GetBoroughBreakdown()
	if err != nil {
		return nil, err
	}
	if p, err = s.writer.WriteBoroughSummary(boroughs); err != nil {
		return nil, err
	}
	paths = append(paths, p)

	top, err := s.ranking.GetTopPickupZones(k)
	if err != nil {
		return nil, fmt.Errorf("failed to rank zones for export: %w", err)
	}
	if p, err = s.writer.WriteTopZones(top); err != nil {
		return nil, err
	}
	paths = append(paths, p)

	daily, err := s.statsRepo.GetDailyPattern()
	if err != nil {
		return nil, err
	}
	if p, err = s.writer.WriteDailyPattern(daily); err != nil {
		return nil, err
	}
	paths = append(paths, p)

	run, err := s.reportRepo.GetLatestRun()
	if err != nil {
		return nil, err
	}
	if run != nil {
		if p, err = s.writer.WriteCleaningStats(run); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}

	log.Printf("[ExportService] wrote %d summary files", len(paths))
	return paths, nil
}
