package service

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/darleneayinkamiye/mobility-backend-go/internal/database"
	"github.com/darleneayinkamiye/mobility-backend-go/internal/models"
	"github.com/darleneayinkamiye/mobility-backend-go/internal/pipeline"
	"github.com/darleneayinkamiye/mobility-backend-go/internal/repository"
)

const zonesCSV = `LocationID,Borough,Zone,service_zone
1,Manhattan,Alphabet City,Yellow Zone
2,Brooklyn,Bensonhurst,Boro Zone
`

// Five raw rows: two identical (duplicate), one with a blank dropoff, one
// with a dropoff before pickup, one fully valid in zone 2.
const tripsCSV = `tpep_pickup_datetime,tpep_dropoff_datetime,PULocationID,DOLocationID,passenger_count,trip_distance,fare_amount,tip_amount,total_amount,payment_type
2024-03-04 08:00:00,2024-03-04 08:15:00,1,2,1,3.0,15.0,2.0,17.0,1
2024-03-04 08:00:00,2024-03-04 08:15:00,1,2,1,3.0,15.0,2.0,17.0,1
2024-03-04 09:00:00,,1,2,1,2.0,10.0,1.0,11.0,1
2024-03-04 10:00:00,2024-03-04 09:30:00,1,2,1,2.0,10.0,1.0,11.0,1
2024-03-09 11:00:00,2024-03-09 11:20:00,2,1,2,4.0,18.0,3.0,21.0,2
`

func newIngestService(t *testing.T) (*IngestService, *repository.TripRepository) {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.ApplySchema(db))

	tripRepo := repository.NewTripRepository(db)
	zoneRepo := repository.NewZoneRepository(db)
	reportRepo := repository.NewReportRepository(db)

	return NewIngestService(tripRepo, zoneRepo, reportRepo, pipeline.DefaultThresholds), tripRepo
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestIngestServiceEndToEnd(t *testing.T) {
	svc, tripRepo := newIngestService(t)

	count, err := svc.LoadZones(writeFile(t, "zones.csv", zonesCSV))
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	run, err := svc.RunCleaning(writeFile(t, "trips.csv", tripsCSV))
	require.NoError(t, err)
	require.NotNil(t, run)

	assert.NotEmpty(t, run.RunID)
	assert.Equal(t, 5, run.InputCount)
	assert.Equal(t, 2, run.SurvivorCount)
	assert.False(t, run.FinishedAt.Before(run.StartedAt))

	removed := make(map[string]int, len(run.Stages))
	for _, s := range run.Stages {
		removed[s.Stage] = s.Removed
	}
	assert.Equal(t, 1, removed[pipeline.StageDuplicates])
	assert.Equal(t, 1, removed[pipeline.StageRequiredFields])
	assert.Equal(t, 1, removed[pipeline.StageTemporalOrder])

	trips, err := tripRepo.GetAll()
	require.NoError(t, err)
	require.Len(t, trips, 2)

	// The weekend trip survived with derived fields attached
	var weekend *models.CleanedTrip
	for i := range trips {
		if trips[i].IsWeekend {
			weekend = &trips[i]
		}
	}
	require.NotNil(t, weekend)
	assert.Equal(t, 2, weekend.PULocationID)
	assert.InDelta(t, 20.0, weekend.DurationMinutes, 1e-9)
	assert.InDelta(t, 12.0, weekend.SpeedMPH, 1e-9)
	assert.Equal(t, models.TimeOfDayMorning, weekend.TimeOfDay)

	latest, err := svc.GetLatestRun()
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, run.RunID, latest.RunID)
}

func TestIngestServiceRequiresZones(t *testing.T) {
	svc, _ := newIngestService(t)

	_, err := svc.RunCleaning(writeFile(t, "trips.csv", tripsCSV))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zone lookup is empty")
}

func TestIngestServiceRerunReplaces(t *testing.T) {
	svc, tripRepo := newIngestService(t)

	_, err := svc.LoadZones(writeFile(t, "zones.csv", zonesCSV))
	require.NoError(t, err)

	path := writeFile(t, "trips.csv", tripsCSV)
	_, err = svc.RunCleaning(path)
	require.NoError(t, err)
	_, err = svc.RunCleaning(path)
	require.NoError(t, err)

	// Trips are replaced per run, not accumulated
	n, err := tripRepo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	// Both runs remain in the audit trail
	runs, err := svc.GetRuns()
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}
