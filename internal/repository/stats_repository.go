package repository

import (
	"database/sql"
	"fmt"

	"github.com/darleneayinkamiye/mobility-backend-go/internal/models"
)

// StatsRepository handles aggregate queries over stored trips
type StatsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// GetOverallSummary returns dataset-wide averages
func (r *StatsRepository) GetOverallSummary() (*models.OverallSummary, error) {
	var s models.OverallSummary
	err := r.db.QueryRow(`SELECT COUNT(*),
		COALESCE(ROUND(AVG(fare_amount), 2), 0),
		COALESCE(ROUND(AVG(trip_distance), 2), 0),
		COALESCE(ROUND(AVG(trip_duration_minutes), 2), 0),
		COALESCE(ROUND(AVG(speed_mph), 2), 0)
		FROM trips`).Scan(&s.TotalTrips, &s.AvgFare, &s.AvgDistance, &s.AvgDuration, &s.AvgSpeed)
	if err != nil {
		return nil, fmt.Errorf("failed to get overall summary: %w", err)
	}
	return &s, nil
}

// GetHourlySummary returns trip statistics per pickup hour
func (r *StatsRepository) GetHourlySummary() ([]models.HourlySummary, error) {
	rows, err := r.db.Query(`SELECT pickup_hour,
		COUNT(*),
		ROUND(AVG(fare_amount), 2),
		ROUND(AVG(trip_distance), 2),
		ROUND(AVG(trip_duration_minutes), 2),
		ROUND(AVG(speed_mph), 2)
		FROM trips
		GROUP BY pickup_hour
		ORDER BY pickup_hour`)
	if err != nil {
		return nil, fmt.Errorf("failed to query hourly summary: %w", err)
	}
	defer rows.Close()

	var out []models.HourlySummary
	for rows.Next() {
		var h models.HourlySummary
		if err := rows.Scan(&h.PickupHour, &h.TripCount, &h.AvgFare,
			&h.AvgDistance, &h.AvgDuration, &h.AvgSpeed); err != nil {
			return nil, fmt.Errorf("failed to scan hourly summary: %w", err)
		}
		out = append(out, h)
	}
	return out, nil
}

// GetBoroughBreakdown returns trip volume and averages per pickup borough
func (r *StatsRepository) GetBoroughBreakdown() ([]models.BoroughSummary, error) {
	rows, err := r.db.Query(`SELECT z.borough,
		COUNT(*),
		ROUND(AVG(t.fare_amount), 2),
		ROUND(AVG(t.trip_distance), 2),
		ROUND(AVG(t.fare_per_mile), 2),
		ROUND(AVG(t.speed_mph), 2)
		FROM trips t
		JOIN zones z ON t.pu_location_id = z.location_id
		GROUP BY z.borough
		ORDER BY COUNT(*) DESC, z.borough`)
	if err != nil {
		return nil, fmt.Errorf("failed to query borough breakdown: %w", err)
	}
	defer rows.Close()

	var out []models.BoroughSummary
	for rows.Next() {
		var b models.BoroughSummary
		if err := rows.Scan(&b.Borough, &b.TripCount, &b.AvgFare,
			&b.AvgDistance, &b.AvgFarePerMile, &b.AvgSpeed); err != nil {
			return nil, fmt.Errorf("failed to scan borough breakdown: %w", err)
		}
		out = append(out, b)
	}
	return out, nil
}

// GetTimeOfDayDemand returns demand per time-of-day bucket, busiest first
func (r *StatsRepository) GetTimeOfDayDemand() ([]models.TimeOfDaySummary, error) {
	rows, err := r.db.Query(`SELECT time_of_day,
		COUNT(*),
		ROUND(AVG(fare_amount), 2),
		ROUND(AVG(speed_mph), 2)
		FROM trips
		GROUP BY time_of_day
		ORDER BY COUNT(*) DESC, time_of_day`)
	if err != nil {
		return nil, fmt.Errorf("failed to query time-of-day demand: %w", err)
	}
	defer rows.Close()

	var out []models.TimeOfDaySummary
	for rows.Next() {
		var s models.TimeOfDaySummary
		if err := rows.Scan(&s.TimeOfDay, &s.TripCount, &s.AvgFare, &s.AvgSpeed); err != nil {
			return nil, fmt.Errorf("failed to scan time-of-day demand: %w", err)
		}
		out = append(out, s)
	}
	return out, nil
}

// GetDailyPattern compares weekday and weekend behaviour
func (r *StatsRepository) GetDailyPattern() ([]models.DayTypeSummary, error) {
	rows, err := r.db.Query(`SELECT
		CASE WHEN is_weekend = 1 THEN 'Weekend' ELSE 'Weekday' END AS day_type,
		COUNT(*),
		ROUND(AVG(fare_amount), 2),
		ROUND(AVG(trip_distance), 2),
		ROUND(AVG(speed_mph), 2)
		FROM trips
		GROUP BY day_type
		ORDER BY day_type`)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily pattern: %w", err)
	}
	defer rows.Close()

	var out []models.DayTypeSummary
	for rows.Next() {
		var d models.DayTypeSummary
		if err := rows.Scan(&d.DayType, &d.TripCount, &d.AvgFare,
			&d.AvgDistance, &d.AvgSpeed); err != nil {
			return nil, fmt.Errorf("failed to scan daily pattern: %w", err)
		}
		out = append(out, d)
	}
	return out, nil
}

// GetPeakOffPeak compares rush-hour trips (7-9, 17-19) against the rest
func (r *StatsRepository) GetPeakOffPeak() ([]models.PeriodSummary, error) {
	rows, err := r.db.Query(`SELECT
		CASE
			WHEN pickup_hour BETWEEN 7 AND 9 THEN 'Morning Rush'
			WHEN pickup_hour BETWEEN 17 AND 19 THEN 'Evening Rush'
			ELSE 'Off-Peak'
		END AS period,
		COUNT(*),
		ROUND(AVG(fare_amount), 2),
		ROUND(AVG(trip_duration_minutes), 2),
		ROUND(AVG(speed_mph), 2)
		FROM trips
		GROUP BY period
		ORDER BY COUNT(*) DESC, period`)
	if err != nil {
		return nil, fmt.Errorf("failed to query peak comparison: %w", err)
	}
	defer rows.Close()

	var out []models.PeriodSummary
	for rows.Next() {
		var p models.PeriodSummary
		if err := rows.Scan(&p.Period, &p.TripCount, &p.AvgFare,
			&p.AvgDuration, &p.AvgSpeed); err != nil {
			return nil, fmt.Errorf("failed to scan peak comparison: %w", err)
		}
		out = append(out, p)
	}
	return out, nil
}

// GetHourlySpeedProfile returns average speed per hour, a congestion proxy
func (r *StatsRepository) GetHourlySpeedProfile() ([]models.HourlySpeed, error) {
	rows, err := r.db.Query(`SELECT pickup_hour,
		COUNT(*),
		ROUND(AVG(speed_mph), 2)
		FROM trips
		GROUP BY pickup_hour
		ORDER BY pickup_hour`)
	if err != nil {
		return nil, fmt.Errorf("failed to query speed profile: %w", err)
	}
	defer rows.Close()

	var out []models.HourlySpeed
	for rows.Next() {
		var h models.HourlySpeed
		if err := rows.Scan(&h.PickupHour, &h.TripCount, &h.AvgSpeed); err != nil {
			return nil, fmt.Errorf("failed to scan speed profile: %w", err)
		}
		out = append(out, h)
	}
	return out, nil
}

// GetPickupZoneCounts tallies trips per pickup zone. Ordered by zone ID so
// the ranking input sequence is deterministic run to run.
func (r *StatsRepository) GetPickupZoneCounts() ([]models.ZoneCount, error) {
	rows, err := r.db.Query(`SELECT pu_location_id, COUNT(*)
		FROM trips
		GROUP BY pu_location_id
		ORDER BY pu_location_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query zone counts: %w", err)
	}
	defer rows.Close()

	var out []models.ZoneCount
	for rows.Next() {
		var zc models.ZoneCount
		if err := rows.Scan(&zc.ZoneID, &zc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan zone count: %w", err)
		}
		out = append(out, zc)
	}
	return out, nil
}
