package models

// OverallSummary represents dataset-wide averages
type OverallSummary struct {
	TotalTrips  int64   `json:"total_trips"`
	AvgFare     float64 `json:"avg_fare"`
	AvgDistance float64 `json:"avg_distance"`
	AvgDuration float64 `json:"avg_duration"`
	AvgSpeed    float64 `json:"avg_speed"`
}

// HourlySummary represents aggregate trip statistics for one pickup hour
type HourlySummary struct {
	PickupHour  int     `json:"pickup_hour" db:"pickup_hour"`
	TripCount   int64   `json:"trip_count" db:"trip_count"`
	AvgFare     float64 `json:"avg_fare" db:"avg_fare"`
	AvgDistance float64 `json:"avg_distance" db:"avg_distance"`
	AvgDuration float64 `json:"avg_duration" db:"avg_duration"`
	AvgSpeed    float64 `json:"avg_speed" db:"avg_speed"`
}

// BoroughSummary represents aggregate trip statistics per pickup borough
type BoroughSummary struct {
	Borough        string  `json:"borough" db:"borough"`
	TripCount      int64   `json:"trip_count" db:"trip_count"`
	AvgFare        float64 `json:"avg_fare" db:"avg_fare"`
	AvgDistance    float64 `json:"avg_distance" db:"avg_distance"`
	AvgFarePerMile float64 `json:"avg_fare_per_mile" db:"avg_fare_per_mile"`
	AvgSpeed       float64 `json:"avg_speed" db:"avg_speed"`
}

// TimeOfDaySummary represents demand per time-of-day bucket
type TimeOfDaySummary struct {
	TimeOfDay string  `json:"time_of_day" db:"time_of_day"`
	TripCount int64   `json:"trip_count" db:"trip_count"`
	AvgFare   float64 `json:"avg_fare" db:"avg_fare"`
	AvgSpeed  float64 `json:"avg_speed" db:"avg_speed"`
}

// DayTypeSummary compares weekday and weekend behaviour
type DayTypeSummary struct {
	DayType     string  `json:"day_type" db:"day_type"` // Weekday or Weekend
	TripCount   int64   `json:"trip_count" db:"trip_count"`
	AvgFare     float64 `json:"avg_fare" db:"avg_fare"`
	AvgDistance float64 `json:"avg_distance" db:"avg_distance"`
	AvgSpeed    float64 `json:"avg_speed" db:"avg_speed"`
}

// PeriodSummary compares rush-hour periods against off-peak
type PeriodSummary struct {
	Period      string  `json:"period" db:"period"` // Morning Rush, Evening Rush, Off-Peak
	TripCount   int64   `json:"trip_count" db:"trip_count"`
	AvgFare     float64 `json:"avg_fare" db:"avg_fare"`
	AvgDuration float64 `json:"avg_duration" db:"avg_duration"`
	AvgSpeed    float64 `json:"avg_speed" db:"avg_speed"`
}

// HourlySpeed is one point of the hourly speed profile (congestion proxy)
type HourlySpeed struct {
	PickupHour int     `json:"pickup_hour" db:"pickup_hour"`
	TripCount  int64   `json:"trip_count" db:"trip_count"`
	AvgSpeed   float64 `json:"avg_speed" db:"avg_speed"`
}
