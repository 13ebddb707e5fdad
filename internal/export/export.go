package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/darleneayinkamiye/mobility-backend-go/internal/models"
)

// Writer writes summary CSV files into a target directory
type Writer struct {
	dir string
}

// NewWriter creates a writer rooted at dir. The directory is created on
// first write.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// WriteHourlySummary exports per-hour trip statistics
func (w *Writer) WriteHourlySummary(rows []models.HourlySummary) (string, error) {
	records := make([][]string, 0, len(rows))
	for _, h := range rows {
		records = append(records, []string{
			strconv.Itoa(h.PickupHour),
			strconv.FormatInt(h.TripCount, 10),
			ffmt(h.AvgFare),
			ffmt(h.AvgDistance),
			ffmt(h.AvgDuration),
			ffmt(h.AvgSpeed),
		})
	}
	header := []string{"pickup_hour", "trip_count", "avg_fare", "avg_distance", "avg_duration", "avg_speed"}
	return w.writeCSV("hourly_summary.csv", header, records)
}

// WriteBoroughSummary exports per-borough trip statistics
func (w *Writer) WriteBoroughSummary(rows []models.BoroughSummary) (string, error) {
	records := make([][]string, 0, len(rows))
	for _, b := range rows {
		records = append(records, []string{
			b.Borough,
			strconv.FormatInt(b.TripCount, 10),
			ffmt(b.AvgFare),
			ffmt(b.AvgDistance),
			ffmt(b.AvgFarePerMile),
			ffmt(b.AvgSpeed),
		})
	}
	header := []string{"borough", "trip_count", "avg_fare", "avg_distance", "avg_fare_per_mile", "avg_speed"}
	return w.writeCSV("borough_summary.csv", header, records)
}

// WriteTopZones exports the ranked busiest pickup zones
func (w *Writer) WriteTopZones(result *models.TopZonesResult) (string, error) {
	records := make([][]string, 0, len(result.Zones))
	for _, z := range result.Zones {
		records = append(records, []string{
			strconv.Itoa(z.Rank),
			strconv.Itoa(z.ZoneID),
			z.ZoneName,
			z.Borough,
			strconv.Itoa(z.Count),
		})
	}
	header := []string{"rank", "zone_id", "zone_name", "borough", "trip_count"}
	return w.writeCSV("top_pickup_zones.csv", header, records)
}

// WriteDailyPattern exports the weekday/weekend comparison
func (w *Writer) WriteDailyPattern(rows []models.DayTypeSummary) (string, error) {
	records := make([][]string, 0, len(rows))
	for _, d := range rows {
		records = append(records, []string{
			d.DayType,
			strconv.FormatInt(d.TripCount, 10),
			ffmt(d.AvgFare),
			ffmt(d.AvgDistance),
			ffmt(d.AvgSpeed),
		})
	}
	header := []string{"day_type", "trip_count", "avg_fare", "avg_distance", "avg_speed"}
	return w.writeCSV("daily_pattern.csv", header, records)
}

// WriteCleaningStats exports the stage tallies of a cleaning run
func (w *Writer) WriteCleaningStats(run *models.CleaningRun) (string, error) {
	records := make([][]string, 0, len(run.Stages)+2)
	records = append(records, []string{"input_records", strconv.Itoa(run.InputCount)})
	for _, s := range run.Stages {
		records = append(records, []string{s.Stage, strconv.Itoa(s.Removed)})
	}
	records = append(records, []string{"surviving_records", strconv.Itoa(run.SurvivorCount)})

	header := []string{"metric", "count"}
	return w.writeCSV("cleaning_stats.csv", header, records)
}

func (w *Writer) writeCSV(name string, header []string, records [][]string) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}

	path := filepath.Join(w.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}
	if err := cw.WriteAll(records); err != nil {
		return "", fmt.Errorf("failed to write rows: %w", err)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("failed to flush %s: %w", name, err)
	}
	return path, nil
}

func ffmt(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
