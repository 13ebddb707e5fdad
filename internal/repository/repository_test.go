package repository

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/darleneayinkamiye/mobility-backend-go/internal/database"
	"github.com/darleneayinkamiye/mobility-backend-go/internal/models"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.ApplySchema(db))
	return db
}

func testTrip(pickup time.Time, puZone int) models.CleanedTrip {
	return models.CleanedTrip{
		PickupTime:      pickup,
		DropoffTime:     pickup.Add(15 * time.Minute),
		PULocationID:    puZone,
		DOLocationID:    puZone,
		PassengerCount:  1,
		TripDistance:    3.0,
		FareAmount:      15.0,
		TipAmount:       2.0,
		TotalAmount:     17.0,
		PaymentType:     1,
		DurationMinutes: 15,
		SpeedMPH:        12,
		FarePerMile:     5,
		PickupHour:      pickup.Hour(),
		TimeOfDay:       models.TimeOfDayMorning,
		IsWeekend:       false,
	}
}

func TestZoneRepositoryReplaceAll(t *testing.T) {
	repo := NewZoneRepository(newTestDB(t))

	require.NoError(t, repo.ReplaceAll([]models.Zone{
		{LocationID: 1, Borough: "EWR", ZoneName: "Newark Airport"},
		{LocationID: 2, Borough: "Queens", ZoneName: "Jamaica Bay"},
	}))

	count, err := repo.CountZones()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// A reload replaces, not appends
	require.NoError(t, repo.ReplaceAll([]models.Zone{
		{LocationID: 3, Borough: "Bronx", ZoneName: "Allerton"},
	}))

	zones, err := repo.GetZones()
	require.NoError(t, err)
	require.Len(t, zones, 1)
	assert.Equal(t, 3, zones[0].LocationID)

	byID, err := repo.GetZoneMap()
	require.NoError(t, err)
	assert.Equal(t, "Allerton", byID[3].ZoneName)
}

func TestTripRepositoryInsertAndQuery(t *testing.T) {
	db := newTestDB(t)
	repo := NewTripRepository(db)

	base := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	weekendTrip := testTrip(time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC), 2)
	weekendTrip.IsWeekend = true

	require.NoError(t, repo.InsertBatch([]models.CleanedTrip{
		testTrip(base, 1),
		testTrip(base.Add(time.Hour), 1),
		weekendTrip,
	}))

	count, err := repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	t.Run("unfiltered with pagination", func(t *testing.T) {
		trips, total, err := repo.GetTrips(models.TripFilter{Page: 1, PageSize: 2})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		require.Len(t, trips, 2)
		// Ordered by pickup time
		assert.True(t, trips[0].PickupTime.Before(trips[1].PickupTime))
	})

	t.Run("filter by zone", func(t *testing.T) {
		trips, total, err := repo.GetTrips(models.TripFilter{PULocationID: 2})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, trips, 1)
		assert.Equal(t, 2, trips[0].PULocationID)
	})

	t.Run("filter by weekend flag", func(t *testing.T) {
		weekend := true
		trips, total, err := repo.GetTrips(models.TripFilter{Weekend: &weekend})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, trips, 1)
		assert.True(t, trips[0].IsWeekend)
	})

	t.Run("filter by time window", func(t *testing.T) {
		_, total, err := repo.GetTrips(models.TripFilter{
			StartTime: "2024-03-04 00:00:00",
			EndTime:   "2024-03-04 23:59:59",
		})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
	})

	t.Run("get by id round-trips fields", func(t *testing.T) {
		trips, _, err := repo.GetTrips(models.TripFilter{})
		require.NoError(t, err)
		require.NotEmpty(t, trips)

		got, err := repo.GetTripByID(trips[0].ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, trips[0].FareAmount, got.FareAmount)
		assert.Equal(t, trips[0].TimeOfDay, got.TimeOfDay)
		assert.True(t, trips[0].PickupTime.Equal(got.PickupTime))
	})

	t.Run("get by unknown id", func(t *testing.T) {
		got, err := repo.GetTripByID(99999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("delete all", func(t *testing.T) {
		require.NoError(t, repo.DeleteAll())
		count, err := repo.Count()
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestStatsRepositoryAggregates(t *testing.T) {
	db := newTestDB(t)
	tripRepo := NewTripRepository(db)
	zoneRepo := NewZoneRepository(db)
	statsRepo := NewStatsRepository(db)

	require.NoError(t, zoneRepo.ReplaceAll([]models.Zone{
		{LocationID: 1, Borough: "Manhattan", ZoneName: "Alphabet City"},
		{LocationID: 2, Borough: "Brooklyn", ZoneName: "Bensonhurst"},
	}))

	morning := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	require.NoError(t, tripRepo.InsertBatch([]models.CleanedTrip{
		testTrip(morning, 1),
		testTrip(morning.Add(10*time.Minute), 1),
		testTrip(morning.Add(5*time.Hour), 2),
	}))

	t.Run("overall summary", func(t *testing.T) {
		s, err := statsRepo.GetOverallSummary()
		require.NoError(t, err)
		assert.EqualValues(t, 3, s.TotalTrips)
		assert.InDelta(t, 15.0, s.AvgFare, 1e-9)
	})

	t.Run("hourly summary", func(t *testing.T) {
		rows, err := statsRepo.GetHourlySummary()
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, 8, rows[0].PickupHour)
		assert.EqualValues(t, 2, rows[0].TripCount)
		assert.Equal(t, 13, rows[1].PickupHour)
	})

	t.Run("borough breakdown ordered by volume", func(t *testing.T) {
		rows, err := statsRepo.GetBoroughBreakdown()
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Manhattan", rows[0].Borough)
		assert.EqualValues(t, 2, rows[0].TripCount)
	})

	t.Run("zone counts ordered by zone id", func(t *testing.T) {
		counts, err := statsRepo.GetPickupZoneCounts()
		require.NoError(t, err)
		require.Len(t, counts, 2)
		assert.Equal(t, models.ZoneCount{ZoneID: 1, Count: 2}, counts[0])
		assert.Equal(t, models.ZoneCount{ZoneID: 2, Count: 1}, counts[1])
	})

	t.Run("empty table summary", func(t *testing.T) {
		require.NoError(t, tripRepo.DeleteAll())
		s, err := statsRepo.GetOverallSummary()
		require.NoError(t, err)
		assert.Zero(t, s.TotalTrips)
		assert.Zero(t, s.AvgFare)
	})
}

func TestReportRepositoryRuns(t *testing.T) {
	repo := NewReportRepository(newTestDB(t))

	t.Run("no runs yet", func(t *testing.T) {
		run, err := repo.GetLatestRun()
		require.NoError(t, err)
		assert.Nil(t, run)
	})

	first := models.CleaningRun{
		RunID:         "run-1",
		StartedAt:     time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC),
		FinishedAt:    time.Date(2024, 3, 4, 8, 1, 0, 0, time.UTC),
		SourceFile:    "a.csv",
		InputCount:    100,
		SurvivorCount: 90,
		Stages: []models.StageResult{
			{Stage: "duplicates_removed", Removed: 4},
			{Stage: "missing_required_fields", Removed: 6},
		},
	}
	second := first
	second.RunID = "run-2"
	second.StartedAt = first.StartedAt.Add(time.Hour)
	second.FinishedAt = first.FinishedAt.Add(time.Hour)

	require.NoError(t, repo.SaveRun(first))
	require.NoError(t, repo.SaveRun(second))

	t.Run("latest is most recent", func(t *testing.T) {
		run, err := repo.GetLatestRun()
		require.NoError(t, err)
		require.NotNil(t, run)
		assert.Equal(t, "run-2", run.RunID)
		require.Len(t, run.Stages, 2)
		assert.Equal(t, "duplicates_removed", run.Stages[0].Stage)
		assert.Equal(t, 4, run.Stages[0].Removed)
	})

	t.Run("all runs newest first", func(t *testing.T) {
		runs, err := repo.GetRuns()
		require.NoError(t, err)
		require.Len(t, runs, 2)
		assert.Equal(t, "run-2", runs[0].RunID)
		assert.Equal(t, "run-1", runs[1].RunID)
	})
}
