package pipeline

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/darleneayinkamiye/mobility-backend-go/internal/models"
)

// Stage names as they appear in the cleaning report, in execution order.
// The order is part of the pipeline's semantics: each stage only ever sees
// the survivors of the previous one, so reordering changes the counts.
const (
	StageDuplicates     = "duplicates_removed"
	StageRequiredFields = "missing_required_fields"
	StageTemporalOrder  = "dropoff_before_pickup"
	StageRangeOutliers  = "out_of_range_values"
	StageReferential    = "unknown_location_ids"
	StageDuration       = "implausible_duration"
	StageSpeed          = "implausible_speed"
)

// StageOrder lists all stage names in execution order
var StageOrder = []string{
	StageDuplicates,
	StageRequiredFields,
	StageTemporalOrder,
	StageRangeOutliers,
	StageReferential,
	StageDuration,
	StageSpeed,
}

// ErrMissingInput is returned when no raw trip source was supplied at all.
// A non-nil empty batch is not an error: it yields zero survivors and a
// report with all-zero removals.
var ErrMissingInput = errors.New("pipeline: no raw trip source")

// Clean runs the seven-stage cleaning pipeline over a batch of raw trips and
// returns the surviving trips with all derived fields attached, plus the
// per-stage audit report. Inputs are never mutated and no state is kept
// between runs; identical input and zone set reproduce identical output.
func Clean(raw []models.RawTrip, zones models.ValidZoneSet, th Thresholds) ([]models.CleanedTrip, *models.CleaningReport, error) {
	if raw == nil {
		return nil, nil, ErrMissingInput
	}

	report := &models.CleaningReport{InputCount: len(raw)}

	// Stage 1: duplicate removal. Two trips are duplicates when every field
	// matches, including absent ones.
	survivors := dedupe(raw, report)

	// Stage 2: required-field presence. After this stage the pointer fields
	// checked here are safe to dereference.
	survivors = filterRaw(survivors, report, StageRequiredFields, func(r models.RawTrip) bool {
		return r.PickupTime != nil && r.DropoffTime != nil &&
			r.PULocationID != nil && r.DOLocationID != nil &&
			r.FareAmount != nil && r.TripDistance != nil
	})

	// Stage 3: temporal ordering. Dropoff must be strictly after pickup.
	survivors = filterRaw(survivors, report, StageTemporalOrder, func(r models.RawTrip) bool {
		return r.DropoffTime.After(*r.PickupTime)
	})

	// Stage 4: range outliers. Distance and fare strictly positive and below
	// their caps; a missing passenger count is treated as out of range here
	// rather than at stage 2, matching the fixed stage semantics.
	survivors = filterRaw(survivors, report, StageRangeOutliers, func(r models.RawTrip) bool {
		if *r.TripDistance <= 0 || *r.TripDistance >= th.MaxDistanceMiles {
			return false
		}
		if *r.FareAmount <= 0 || *r.FareAmount >= th.MaxFareAmount {
			return false
		}
		if r.PassengerCount == nil || *r.PassengerCount <= 0 || *r.PassengerCount > th.MaxPassengers {
			return false
		}
		return true
	})

	// Stage 5: referential validity against the zone lookup
	survivors = filterRaw(survivors, report, StageReferential, func(r models.RawTrip) bool {
		return zones.Contains(*r.PULocationID) && zones.Contains(*r.DOLocationID)
	})

	// Stage 6: duration plausibility. Duration is computed here and retained.
	cleaned := make([]models.CleanedTrip, 0, len(survivors))
	removed := 0
	for _, r := range survivors {
		c := promote(r)
		c.DurationMinutes = c.DropoffTime.Sub(c.PickupTime).Minutes()
		if c.DurationMinutes < th.MinDurationMinutes || c.DurationMinutes > th.MaxDurationMinutes {
			removed++
			continue
		}
		cleaned = append(cleaned, c)
	}
	report.Append(StageDuration, removed)

	// Stage 7: speed plausibility. Stage 6 bounded duration away from zero
	// and stage 4 bounded distance, so the ratio is always finite.
	removed = 0
	final := make([]models.CleanedTrip, 0, len(cleaned))
	for _, c := range cleaned {
		c.SpeedMPH = c.TripDistance / (c.DurationMinutes / 60.0)
		if c.SpeedMPH > th.MaxSpeedMPH {
			removed++
			continue
		}
		final = append(final, c)
	}
	report.Append(StageSpeed, removed)

	// Informational features. These never reject a record.
	for i := range final {
		enrich(&final[i])
	}

	report.SurvivorCount = len(final)
	return final, report, nil
}

// filterRaw applies one pass-or-reject rule to the surviving set and records
// the removal count under the given stage name
func filterRaw(trips []models.RawTrip, report *models.CleaningReport, stage string, keep func(models.RawTrip) bool) []models.RawTrip {
	survivors := make([]models.RawTrip, 0, len(trips))
	removed := 0
	for _, t := range trips {
		if keep(t) {
			survivors = append(survivors, t)
		} else {
			removed++
		}
	}
	report.Append(stage, removed)
	return survivors
}

// dedupe keeps the first occurrence of each fully identical trip. Duplicates
// are counted once in the report, never double-counted by later stages.
func dedupe(trips []models.RawTrip, report *models.CleaningReport) []models.RawTrip {
	seen := make(map[string]struct{}, len(trips))
	survivors := make([]models.RawTrip, 0, len(trips))
	removed := 0
	for _, t := range trips {
		key := identityKey(t)
		if _, dup := seen[key]; dup {
			removed++
			continue
		}
		seen[key] = struct{}{}
		survivors = append(survivors, t)
	}
	report.Append(StageDuplicates, removed)
	return survivors
}

// identityKey serializes every field of a raw trip, distinguishing absent
// values from zeroes, so that map lookup implements full-record equality
func identityKey(r models.RawTrip) string {
	var b strings.Builder
	writeTimeField(&b, r.PickupTime)
	writeTimeField(&b, r.DropoffTime)
	writeIntField(&b, r.PULocationID)
	writeIntField(&b, r.DOLocationID)
	writeIntField(&b, r.PassengerCount)
	writeFloatField(&b, r.TripDistance)
	writeFloatField(&b, r.FareAmount)
	writeFloatField(&b, r.TipAmount)
	writeFloatField(&b, r.TotalAmount)
	writeIntField(&b, r.PaymentType)
	return b.String()
}

func writeTimeField(b *strings.Builder, t *time.Time) {
	if t == nil {
		b.WriteString("-|")
		return
	}
	b.WriteString(strconv.FormatInt(t.UnixNano(), 10))
	b.WriteByte('|')
}

func writeIntField(b *strings.Builder, v *int) {
	if v == nil {
		b.WriteString("-|")
		return
	}
	b.WriteString(strconv.Itoa(*v))
	b.WriteByte('|')
}

func writeFloatField(b *strings.Builder, v *float64) {
	if v == nil {
		b.WriteString("-|")
		return
	}
	b.WriteString(strconv.FormatFloat(*v, 'g', -1, 64))
	b.WriteByte('|')
}

// promote copies the validated fields of a raw trip into a cleaned trip.
// Only called after the required-field stage, so dereferences are safe;
// optional money fields default to zero when absent.
func promote(r models.RawTrip) models.CleanedTrip {
	c := models.CleanedTrip{
		PickupTime:   *r.PickupTime,
		DropoffTime:  *r.DropoffTime,
		PULocationID: *r.PULocationID,
		DOLocationID: *r.DOLocationID,
		TripDistance: *r.TripDistance,
		FareAmount:   *r.FareAmount,
	}
	if r.PassengerCount != nil {
		c.PassengerCount = *r.PassengerCount
	}
	if r.TipAmount != nil {
		c.TipAmount = *r.TipAmount
	}
	if r.TotalAmount != nil {
		c.TotalAmount = *r.TotalAmount
	}
	if r.PaymentType != nil {
		c.PaymentType = *r.PaymentType
	}
	return c
}

// enrich attaches the informational derived fields. Distance is strictly
// positive by the range stage, so fare per mile is always finite.
func enrich(c *models.CleanedTrip) {
	c.FarePerMile = c.FareAmount / c.TripDistance
	c.PickupHour = c.PickupTime.Hour()
	c.TimeOfDay = timeOfDay(c.PickupHour)
	wd := c.PickupTime.Weekday()
	c.IsWeekend = wd == time.Saturday || wd == time.Sunday
}

// timeOfDay maps a pickup hour to its bucket. Night wraps midnight.
func timeOfDay(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return models.TimeOfDayMorning
	case hour >= 12 && hour < 17:
		return models.TimeOfDayAfternoon
	case hour >= 17 && hour < 21:
		return models.TimeOfDayEvening
	default:
		return models.TimeOfDayNight
	}
}
