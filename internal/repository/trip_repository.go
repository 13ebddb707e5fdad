package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/darleneayinkamiye/mobility-backend-go/internal/models"
)

// TripRepository handles database operations for cleaned trips
type TripRepository struct {
	db *sql.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{db: db}
}

const tripColumns = `pickup_time, dropoff_time, pu_location_id, do_location_id,
	passenger_count, trip_distance, fare_amount, tip_amount, total_amount,
	payment_type, trip_duration_minutes, speed_mph, fare_per_mile,
	pickup_hour, time_of_day, is_weekend`

// InsertBatch inserts cleaned trips inside a single transaction
func (r *TripRepository) InsertBatch(trips []models.CleanedTrip) error {
	if len(trips) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO trips (` + tripColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare trip insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range trips {
		_, err := stmt.Exec(
			t.PickupTime, t.DropoffTime, t.PULocationID, t.DOLocationID,
			t.PassengerCount, t.TripDistance, t.FareAmount, t.TipAmount,
			t.TotalAmount, t.PaymentType, t.DurationMinutes, t.SpeedMPH,
			t.FarePerMile, t.PickupHour, t.TimeOfDay, t.IsWeekend,
		)
		if err != nil {
			return fmt.Errorf("failed to insert trip %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit trips: %w", err)
	}
	return nil
}

// DeleteAll clears the trips table before a fresh ingest run
func (r *TripRepository) DeleteAll() error {
	if _, err := r.db.Exec("DELETE FROM trips"); err != nil {
		return fmt.Errorf("failed to clear trips: %w", err)
	}
	return nil
}

// GetTrips retrieves trips with filtering and pagination
func (r *TripRepository) GetTrips(filter models.TripFilter) ([]models.CleanedTrip, int64, error) {
	var conditions []string
	var args []interface{}

	if t, ok := parseFilterTime(filter.StartTime); ok {
		conditions = append(conditions, "pickup_time >= ?")
		args = append(args, t)
	}
	if t, ok := parseFilterTime(filter.EndTime); ok {
		conditions = append(conditions, "pickup_time <= ?")
		args = append(args, t)
	}
	if filter.PULocationID > 0 {
		conditions = append(conditions, "pu_location_id = ?")
		args = append(args, filter.PULocationID)
	}
	if filter.DOLocationID > 0 {
		conditions = append(conditions, "do_location_id = ?")
		args = append(args, filter.DOLocationID)
	}
	if filter.TimeOfDay != "" {
		conditions = append(conditions, "time_of_day = ?")
		args = append(args, filter.TimeOfDay)
	}
	if filter.Weekend != nil {
		conditions = append(conditions, "is_weekend = ?")
		args = append(args, *filter.Weekend)
	}
	if filter.MinDistance > 0 {
		conditions = append(conditions, "trip_distance >= ?")
		args = append(args, filter.MinDistance)
	}
	if filter.MinFare > 0 {
		conditions = append(conditions, "fare_amount >= ?")
		args = append(args, filter.MinFare)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM trips"+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count trips: %w", err)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	if filter.PageSize > 1000 {
		filter.PageSize = 1000
	}
	offset := (filter.Page - 1) * filter.PageSize

	query := `SELECT id, ` + tripColumns + ` FROM trips` + whereClause +
		` ORDER BY pickup_time, id LIMIT ? OFFSET ?`
	args = append(args, filter.PageSize, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	var trips []models.CleanedTrip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, 0, err
		}
		trips = append(trips, t)
	}

	return trips, total, nil
}

// GetTripByID retrieves a single trip by ID, nil when not found
func (r *TripRepository) GetTripByID(id int64) (*models.CleanedTrip, error) {
	row := r.db.QueryRow(`SELECT id, `+tripColumns+` FROM trips WHERE id = ?`, id)

	t, err := scanTripRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return &t, nil
}

// GetAll streams every stored trip, used by the validation report
func (r *TripRepository) GetAll() ([]models.CleanedTrip, error) {
	rows, err := r.db.Query(`SELECT id, ` + tripColumns + ` FROM trips ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	var trips []models.CleanedTrip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}

	return trips, nil
}

// Count returns the number of stored trips
func (r *TripRepository) Count() (int64, error) {
	var count int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM trips").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count trips: %w", err)
	}
	return count, nil
}

func scanTrip(rows *sql.Rows) (models.CleanedTrip, error) {
	var t models.CleanedTrip
	err := rows.Scan(
		&t.ID, &t.PickupTime, &t.DropoffTime, &t.PULocationID, &t.DOLocationID,
		&t.PassengerCount, &t.TripDistance, &t.FareAmount, &t.TipAmount,
		&t.TotalAmount, &t.PaymentType, &t.DurationMinutes, &t.SpeedMPH,
		&t.FarePerMile, &t.PickupHour, &t.TimeOfDay, &t.IsWeekend,
	)
	if err != nil {
		return t, fmt.Errorf("failed to scan trip: %w", err)
	}
	return t, nil
}

func scanTripRow(row *sql.Row) (models.CleanedTrip, error) {
	var t models.CleanedTrip
	err := row.Scan(
		&t.ID, &t.PickupTime, &t.DropoffTime, &t.PULocationID, &t.DOLocationID,
		&t.PassengerCount, &t.TripDistance, &t.FareAmount, &t.TipAmount,
		&t.TotalAmount, &t.PaymentType, &t.DurationMinutes, &t.SpeedMPH,
		&t.FarePerMile, &t.PickupHour, &t.TimeOfDay, &t.IsWeekend,
	)
	return t, err
}

// parseFilterTime accepts the two timestamp shapes the API documents
func parseFilterTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
