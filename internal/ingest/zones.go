package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/darleneayinkamiye/mobility-backend-go/internal/models"
)

// Zone lookup CSV column names
const (
	colLocationID  = "locationid"
	colBorough     = "borough"
	colZoneName    = "zone"
	colServiceZone = "service_zone"
)

// ReadZones reads the zone lookup table from a CSV stream. Rows without a
// parseable location ID are skipped; the lookup is reference data and a
// broken row cannot be repaired downstream.
func ReadZones(r io.Reader) ([]models.Zone, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("zone lookup has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read zone header: %w", err)
	}

	cols := indexColumns(header)

	var zones []models.Zone
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read zone row %d: %w", len(zones)+2, err)
		}

		id, err := strconv.Atoi(cell(row, cols, colLocationID))
		if err != nil {
			continue
		}

		zones = append(zones, models.Zone{
			LocationID:  id,
			Borough:     cell(row, cols, colBorough),
			ZoneName:    cell(row, cols, colZoneName),
			ServiceZone: cell(row, cols, colServiceZone),
		})
	}

	return zones, nil
}

// ReadZonesFile reads the zone lookup table from a CSV file on disk
func ReadZonesFile(path string) ([]models.Zone, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open zone lookup: %w", err)
	}
	defer f.Close()

	zones, err := ReadZones(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return zones, nil
}
