package models

import "time"

// RawTrip represents a trip record exactly as it arrives from the source file.
// Every field is a pointer: the reader never judges a value, it only records
// whether one was present. Missing or malformed cells become nil and the
// cleaning pipeline decides their fate.
type RawTrip struct {
	PickupTime     *time.Time `json:"pickup_time"`
	DropoffTime    *time.Time `json:"dropoff_time"`
	PULocationID   *int       `json:"pu_location_id"`
	DOLocationID   *int       `json:"do_location_id"`
	PassengerCount *int       `json:"passenger_count"`
	TripDistance   *float64   `json:"trip_distance"` // Miles
	FareAmount     *float64   `json:"fare_amount"`   // Dollars
	TipAmount      *float64   `json:"tip_amount"`
	TotalAmount    *float64   `json:"total_amount"`
	PaymentType    *int       `json:"payment_type"`
}

// CleanedTrip is a trip that survived every cleaning stage, augmented with
// derived fields. It is immutable once produced: all derived values are pure
// functions of the trip's own timestamp/distance/fare fields.
type CleanedTrip struct {
	ID int64 `json:"id,omitempty" db:"id"`

	// Validated source fields
	PickupTime     time.Time `json:"pickup_time" db:"pickup_time"`
	DropoffTime    time.Time `json:"dropoff_time" db:"dropoff_time"`
	PULocationID   int       `json:"pu_location_id" db:"pu_location_id"`
	DOLocationID   int       `json:"do_location_id" db:"do_location_id"`
	PassengerCount int       `json:"passenger_count" db:"passenger_count"`
	TripDistance   float64   `json:"trip_distance" db:"trip_distance"` // Miles
	FareAmount     float64   `json:"fare_amount" db:"fare_amount"`     // Dollars
	TipAmount      float64   `json:"tip_amount" db:"tip_amount"`
	TotalAmount    float64   `json:"total_amount" db:"total_amount"`
	PaymentType    int       `json:"payment_type" db:"payment_type"`

	// Derived fields
	DurationMinutes float64 `json:"trip_duration_minutes" db:"trip_duration_minutes"`
	SpeedMPH        float64 `json:"speed_mph" db:"speed_mph"`
	FarePerMile     float64 `json:"fare_per_mile" db:"fare_per_mile"`
	PickupHour      int     `json:"pickup_hour" db:"pickup_hour"`
	TimeOfDay       string  `json:"time_of_day" db:"time_of_day"`
	IsWeekend       bool    `json:"is_weekend" db:"is_weekend"`
}

// TimeOfDay constants
const (
	TimeOfDayMorning   = "Morning"   // [05:00, 12:00)
	TimeOfDayAfternoon = "Afternoon" // [12:00, 17:00)
	TimeOfDayEvening   = "Evening"   // [17:00, 21:00)
	TimeOfDayNight     = "Night"     // [21:00, 05:00), wraps midnight
)

// TripsResponse represents a paginated response of cleaned trips
type TripsResponse struct {
	Data       []CleanedTrip `json:"data"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalPages int           `json:"totalPages"`
}
