package pipeline

// Thresholds defines the configurable bounds applied by the range, duration
// and speed stages. Callers override individual bounds without code changes;
// the zero value is not usable, start from DefaultThresholds.
type Thresholds struct {
	MaxDistanceMiles   float64 // Range stage: 0 < distance < max
	MaxFareAmount      float64 // Range stage: 0 < fare < max (dollars)
	MaxPassengers      int     // Range stage: 0 < passengers <= max
	MinDurationMinutes float64 // Duration stage: duration >= min
	MaxDurationMinutes float64 // Duration stage: duration <= max
	MaxSpeedMPH        float64 // Speed stage: speed <= max
}

// DefaultThresholds provides the documented default cleaning bounds
var DefaultThresholds = Thresholds{
	MaxDistanceMiles:   100.0,
	MaxFareAmount:      500.0,
	MaxPassengers:      6,
	MinDurationMinutes: 1.0,
	MaxDurationMinutes: 180.0,
	MaxSpeedMPH:        80.0,
}
