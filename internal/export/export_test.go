package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darleneayinkamiye/mobility-backend-go/internal/models"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteHourlySummary(t *testing.T) {
	w := NewWriter(t.TempDir())

	path, err := w.WriteHourlySummary([]models.HourlySummary{
		{PickupHour: 8, TripCount: 120, AvgFare: 14.5, AvgDistance: 2.3, AvgDuration: 16.0, AvgSpeed: 9.75},
		{PickupHour: 9, TripCount: 95, AvgFare: 13.25, AvgDistance: 2.1, AvgDuration: 14.5, AvgSpeed: 10.2},
	})
	require.NoError(t, err)
	assert.Equal(t, "hourly_summary.csv", filepath.Base(path))

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"pickup_hour", "trip_count", "avg_fare", "avg_distance", "avg_duration", "avg_speed"}, rows[0])
	assert.Equal(t, []string{"8", "120", "14.50", "2.30", "16.00", "9.75"}, rows[1])
}

func TestWriteTopZones(t *testing.T) {
	w := NewWriter(t.TempDir())

	path, err := w.WriteTopZones(&models.TopZonesResult{
		K: 2,
		Zones: []models.RankedZone{
			{Rank: 1, ZoneID: 161, ZoneName: "Midtown Center", Borough: "Manhattan", Count: 900},
			{Rank: 2, ZoneID: 237, ZoneName: "Upper East Side South", Borough: "Manhattan", Count: 850},
		},
	})
	require.NoError(t, err)

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"1", "161", "Midtown Center", "Manhattan", "900"}, rows[1])
	assert.Equal(t, []string{"2", "237", "Upper East Side South", "Manhattan", "850"}, rows[2])
}

func TestWriteCleaningStats(t *testing.T) {
	w := NewWriter(t.TempDir())

	run := &models.CleaningRun{
		InputCount:    100,
		SurvivorCount: 90,
		Stages: []models.StageResult{
			{Stage: "duplicates_removed", Removed: 4},
			{Stage: "missing_required_fields", Removed: 6},
		},
	}

	path, err := w.WriteCleaningStats(run)
	require.NoError(t, err)

	rows := readCSV(t, path)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"input_records", "100"}, rows[1])
	assert.Equal(t, []string{"duplicates_removed", "4"}, rows[2])
	assert.Equal(t, []string{"missing_required_fields", "6"}, rows[3])
	assert.Equal(t, []string{"surviving_records", "90"}, rows[4])
}

func TestWriterCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")
	w := NewWriter(dir)

	_, err := w.WriteDailyPattern([]models.DayTypeSummary{
		{DayType: "Weekday", TripCount: 10, AvgFare: 12.0, AvgDistance: 2.0, AvgSpeed: 10.0},
	})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "daily_pattern.csv"))
	assert.NoError(t, err)
}

func TestWriteBoroughSummaryEmpty(t *testing.T) {
	w := NewWriter(t.TempDir())

	path, err := w.WriteBoroughSummary(nil)
	require.NoError(t, err)

	rows := readCSV(t, path)
	require.Len(t, rows, 1) // header only
}
