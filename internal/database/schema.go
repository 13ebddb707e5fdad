package database

import (
	"database/sql"
	"fmt"
	"log"
)

// migration is one versioned schema step with inline SQL. The schema is small
// and fixed, so steps live in code rather than in .sql files on disk.
type migration struct {
	Version int
	Name    string
	SQL     string
}

var migrations = []migration{
	{
		Version: 1,
		Name:    "create_zones",
		SQL: `
			CREATE TABLE IF NOT EXISTS zones (
				location_id  INTEGER PRIMARY KEY,
				borough      TEXT NOT NULL DEFAULT '',
				zone_name    TEXT NOT NULL DEFAULT '',
				service_zone TEXT NOT NULL DEFAULT ''
			)`,
	},
	{
		Version: 2,
		Name:    "create_trips",
		SQL: `
			CREATE TABLE IF NOT EXISTS trips (
				id                    INTEGER PRIMARY KEY AUTOINCREMENT,
				pickup_time           TIMESTAMP NOT NULL,
				dropoff_time          TIMESTAMP NOT NULL,
				pu_location_id        INTEGER NOT NULL,
				do_location_id        INTEGER NOT NULL,
				passenger_count       INTEGER NOT NULL,
				trip_distance         REAL NOT NULL,
				fare_amount           REAL NOT NULL,
				tip_amount            REAL NOT NULL DEFAULT 0,
				total_amount          REAL NOT NULL DEFAULT 0,
				payment_type          INTEGER NOT NULL DEFAULT 0,
				trip_duration_minutes REAL NOT NULL,
				speed_mph             REAL NOT NULL,
				fare_per_mile         REAL NOT NULL,
				pickup_hour           INTEGER NOT NULL,
				time_of_day           TEXT NOT NULL,
				is_weekend            INTEGER NOT NULL
			)`,
	},
	{
		Version: 3,
		Name:    "create_cleaning_runs",
		SQL: `
			CREATE TABLE IF NOT EXISTS cleaning_runs (
				run_id         TEXT PRIMARY KEY,
				started_at     TIMESTAMP NOT NULL,
				finished_at    TIMESTAMP NOT NULL,
				source_file    TEXT NOT NULL DEFAULT '',
				input_count    INTEGER NOT NULL,
				survivor_count INTEGER NOT NULL
			)`,
	},
	{
		Version: 4,
		Name:    "create_cleaning_log",
		SQL: `
			CREATE TABLE IF NOT EXISTS cleaning_log (
				id          INTEGER PRIMARY KEY AUTOINCREMENT,
				run_id      TEXT NOT NULL REFERENCES cleaning_runs(run_id),
				stage_order INTEGER NOT NULL,
				stage       TEXT NOT NULL,
				removed     INTEGER NOT NULL
			)`,
	},
	{
		Version: 5,
		Name:    "index_trips_pickup",
		SQL: `
			CREATE INDEX IF NOT EXISTS idx_trips_pu_location ON trips(pu_location_id);
			CREATE INDEX IF NOT EXISTS idx_trips_pickup_hour ON trips(pickup_hour);
			CREATE INDEX IF NOT EXISTS idx_trips_time_of_day ON trips(time_of_day)`,
	},
}

// ApplySchema applies all pending schema migrations in version order.
// Exported so tests can bring up a schema on their own connections.
func ApplySchema(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INTEGER PRIMARY KEY,
			name       TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied := make(map[int]bool)
	rows, err := db.Query("SELECT version FROM schema_migrations ORDER BY version")
	if err != nil {
		return fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[v] = true
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", m.Version, err)
		}
		if _, err := tx.Exec(m.SQL); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}

		log.Printf("[Database] applied migration %d_%s", m.Version, m.Name)
	}

	return nil
}
