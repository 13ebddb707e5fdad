package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/darleneayinkamiye/mobility-backend-go/internal/models"
)

// Trip CSV column names as they appear in the TLC source files
const (
	colPickupTime     = "tpep_pickup_datetime"
	colDropoffTime    = "tpep_dropoff_datetime"
	colPULocationID   = "pulocationid"
	colDOLocationID   = "dolocationid"
	colPassengerCount = "passenger_count"
	colTripDistance   = "trip_distance"
	colFareAmount     = "fare_amount"
	colTipAmount      = "tip_amount"
	colTotalAmount    = "total_amount"
	colPaymentType    = "payment_type"
)

// Source timestamp layouts, tried in order
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ReadTrips reads raw trip records from a CSV stream. The reader is strictly
// non-judgemental: a blank or malformed cell becomes a nil field and the
// cleaning pipeline decides whether the record survives. Only a broken CSV
// structure or a header missing entirely is an error here.
func ReadTrips(r io.Reader) ([]models.RawTrip, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("trip file has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read trip header: %w", err)
	}

	cols := indexColumns(header)

	var trips []models.RawTrip
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read trip row %d: %w", len(trips)+2, err)
		}

		trips = append(trips, models.RawTrip{
			PickupTime:     parseTimeCell(cell(row, cols, colPickupTime)),
			DropoffTime:    parseTimeCell(cell(row, cols, colDropoffTime)),
			PULocationID:   parseIntCell(cell(row, cols, colPULocationID)),
			DOLocationID:   parseIntCell(cell(row, cols, colDOLocationID)),
			PassengerCount: parseIntCell(cell(row, cols, colPassengerCount)),
			TripDistance:   parseFloatCell(cell(row, cols, colTripDistance)),
			FareAmount:     parseFloatCell(cell(row, cols, colFareAmount)),
			TipAmount:      parseFloatCell(cell(row, cols, colTipAmount)),
			TotalAmount:    parseFloatCell(cell(row, cols, colTotalAmount)),
			PaymentType:    parseIntCell(cell(row, cols, colPaymentType)),
		})
	}

	return trips, nil
}

// ReadTripsFile reads raw trip records from a CSV file on disk
func ReadTripsFile(path string) ([]models.RawTrip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trip file: %w", err)
	}
	defer f.Close()

	trips, err := ReadTrips(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return trips, nil
}

// indexColumns maps lower-cased header names to their positions
func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

// cell returns the trimmed value of a named column, or "" when the column is
// absent from the header or the row is short
func cell(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseTimeCell(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func parseIntCell(s string) *int {
	if s == "" {
		return nil
	}
	if v, err := strconv.Atoi(s); err == nil {
		return &v
	}
	// Exported dataframes sometimes write integers as "1.0"
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int(f)) {
		v := int(f)
		return &v
	}
	return nil
}

func parseFloatCell(s string) *float64 {
	if s == "" {
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return &v
	}
	return nil
}
