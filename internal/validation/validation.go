package validation

import (
	"fmt"
	"math"
	"time"

	"github.com/darleneayinkamiye/mobility-backend-go/internal/models"
	"github.com/darleneayinkamiye/mobility-backend-go/internal/pipeline"
	"github.com/darleneayinkamiye/mobility-backend-go/internal/stats"
)

// CheckResult represents the outcome of a single validation check
type CheckResult struct {
	Name       string `json:"name"`
	Passed     bool   `json:"passed"`
	Violations int    `json:"violations"`
	Detail     string `json:"detail,omitempty"`
}

// Report summarizes the post-cleaning quality checks over the stored trips.
// A fully cleaned dataset passes every check; any violation points at a gap
// between the cleaning bounds and what actually landed in storage.
type Report struct {
	TripCount int                      `json:"trip_count"`
	Checks    []CheckResult            `json:"checks"`
	Columns   map[string]stats.Summary `json:"columns"`
}

// Passed reports whether every check passed
func (r *Report) Passed() bool {
	for _, c := range r.Checks {
		if !c.Passed {
			return false
		}
	}
	return true
}

// BuildReport runs all quality checks against cleaned trips using the same
// bounds the cleaning pipeline enforced.
func BuildReport(trips []models.CleanedTrip, zones models.ValidZoneSet, th pipeline.Thresholds) *Report {
	r := &Report{TripCount: len(trips)}

	r.addCheck("dropoff_after_pickup", trips, func(t models.CleanedTrip) bool {
		return t.DropoffTime.After(t.PickupTime)
	})
	r.addCheck("fare_within_range", trips, func(t models.CleanedTrip) bool {
		return t.FareAmount > 0 && t.FareAmount <= th.MaxFareAmount
	})
	r.addCheck("distance_within_range", trips, func(t models.CleanedTrip) bool {
		return t.TripDistance > 0 && t.TripDistance <= th.MaxDistanceMiles
	})
	r.addCheck("passenger_count_within_range", trips, func(t models.CleanedTrip) bool {
		return t.PassengerCount >= 1 && t.PassengerCount <= th.MaxPassengers
	})
	r.addCheck("duration_within_bounds", trips, func(t models.CleanedTrip) bool {
		return t.DurationMinutes >= th.MinDurationMinutes && t.DurationMinutes <= th.MaxDurationMinutes
	})
	r.addCheck("speed_within_bounds", trips, func(t models.CleanedTrip) bool {
		return t.SpeedMPH <= th.MaxSpeedMPH
	})
	r.addCheck("duration_matches_timestamps", trips, func(t models.CleanedTrip) bool {
		want := t.DropoffTime.Sub(t.PickupTime).Minutes()
		return math.Abs(t.DurationMinutes-want) < 1e-6
	})
	r.addCheck("pickup_hour_in_range", trips, func(t models.CleanedTrip) bool {
		return t.PickupHour >= 0 && t.PickupHour <= 23
	})
	r.addCheck("time_of_day_is_known_bucket", trips, func(t models.CleanedTrip) bool {
		switch t.TimeOfDay {
		case models.TimeOfDayMorning, models.TimeOfDayAfternoon,
			models.TimeOfDayEvening, models.TimeOfDayNight:
			return true
		}
		return false
	})
	r.addCheck("weekend_flag_matches_pickup_day", trips, func(t models.CleanedTrip) bool {
		wd := t.PickupTime.Weekday()
		return t.IsWeekend == (wd == time.Saturday || wd == time.Sunday)
	})
	r.addCheck("known_location_ids", trips, func(t models.CleanedTrip) bool {
		return zones.Contains(t.PULocationID) && zones.Contains(t.DOLocationID)
	})

	r.Columns = describeColumns(trips)

	return r
}

func (r *Report) addCheck(name string, trips []models.CleanedTrip, ok func(models.CleanedTrip) bool) {
	violations := 0
	for _, t := range trips {
		if !ok(t) {
			violations++
		}
	}

	c := CheckResult{
		Name:       name,
		Passed:     violations == 0,
		Violations: violations,
	}
	if violations > 0 {
		c.Detail = fmt.Sprintf("%d of %d records violate %s", violations, len(trips), name)
	}
	r.Checks = append(r.Checks, c)
}

func describeColumns(trips []models.CleanedTrip) map[string]stats.Summary {
	cols := map[string]func(models.CleanedTrip) float64{
		"fare_amount":           func(t models.CleanedTrip) float64 { return t.FareAmount },
		"trip_distance":         func(t models.CleanedTrip) float64 { return t.TripDistance },
		"trip_duration_minutes": func(t models.CleanedTrip) float64 { return t.DurationMinutes },
		"speed_mph":             func(t models.CleanedTrip) float64 { return t.SpeedMPH },
		"fare_per_mile":         func(t models.CleanedTrip) float64 { return t.FarePerMile },
	}

	out := make(map[string]stats.Summary, len(cols))
	for name, get := range cols {
		values := make([]float64, len(trips))
		for i, t := range trips {
			values[i] = get(t)
		}
		out[name] = stats.Describe(values)
	}
	return out
}
