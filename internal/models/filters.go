package models

// TripFilter represents filter parameters for querying cleaned trips
type TripFilter struct {
	StartTime    string  `form:"startTime"` // RFC3339 or "2006-01-02 15:04:05"
	EndTime      string  `form:"endTime"`
	PULocationID int     `form:"puLocationId"`
	DOLocationID int     `form:"doLocationId"`
	TimeOfDay    string  `form:"timeOfDay"` // Morning, Afternoon, Evening, Night
	Weekend      *bool   `form:"weekend"`
	MinDistance  float64 `form:"minDistance"` // Miles
	MinFare      float64 `form:"minFare"`     // Dollars
	Page         int     `form:"page"`
	PageSize     int     `form:"pageSize"`
}
