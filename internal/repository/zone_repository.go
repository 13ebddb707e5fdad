package repository

import (
	"database/sql"
	"fmt"

	"github.com/darleneayinkamiye/mobility-backend-go/internal/models"
)

// ZoneRepository handles database operations for the zone lookup table
type ZoneRepository struct {
	db *sql.DB
}

// NewZoneRepository creates a new zone repository
func NewZoneRepository(db *sql.DB) *ZoneRepository {
	return &ZoneRepository{db: db}
}

// ReplaceAll replaces the zone lookup table with a fresh load. The lookup is
// reference data, so a reload is wholesale rather than incremental.
func (r *ZoneRepository) ReplaceAll(zones []models.Zone) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM zones"); err != nil {
		return fmt.Errorf("failed to clear zones: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO zones (location_id, borough, zone_name, service_zone)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare zone insert: %w", err)
	}
	defer stmt.Close()

	for _, z := range zones {
		if _, err := stmt.Exec(z.LocationID, z.Borough, z.ZoneName, z.ServiceZone); err != nil {
			return fmt.Errorf("failed to insert zone %d: %w", z.LocationID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit zones: %w", err)
	}
	return nil
}

// GetZones returns all zones ordered by location ID
func (r *ZoneRepository) GetZones() ([]models.Zone, error) {
	rows, err := r.db.Query(`SELECT location_id, borough, zone_name, service_zone
		FROM zones ORDER BY location_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query zones: %w", err)
	}
	defer rows.Close()

	var zones []models.Zone
	for rows.Next() {
		var z models.Zone
		if err := rows.Scan(&z.LocationID, &z.Borough, &z.ZoneName, &z.ServiceZone); err != nil {
			return nil, fmt.Errorf("failed to scan zone: %w", err)
		}
		zones = append(zones, z)
	}

	return zones, nil
}

// GetZoneMap returns zones keyed by location ID
func (r *ZoneRepository) GetZoneMap() (map[int]models.Zone, error) {
	zones, err := r.GetZones()
	if err != nil {
		return nil, err
	}

	byID := make(map[int]models.Zone, len(zones))
	for _, z := range zones {
		byID[z.LocationID] = z
	}
	return byID, nil
}

// CountZones returns the number of zones in the lookup
func (r *ZoneRepository) CountZones() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM zones").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count zones: %w", err)
	}
	return count, nil
}
