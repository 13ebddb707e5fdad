package models

// ZoneCount is one (pickup zone, trip count) observation for ranking
type ZoneCount struct {
	ZoneID int `json:"zone_id" db:"zone_id"`
	Count  int `json:"count" db:"count"`
}

// RankedZone is a top-K entry enriched with zone metadata for serving
type RankedZone struct {
	Rank     int    `json:"rank"`
	ZoneID   int    `json:"zone_id"`
	ZoneName string `json:"zone_name,omitempty"`
	Borough  string `json:"borough,omitempty"`
	Count    int    `json:"count"`
}

// TopZonesResult is the ordered top-K ranking of busiest pickup zones,
// strictly descending by count, ties broken by ascending zone ID.
type TopZonesResult struct {
	K     int          `json:"k"`
	Zones []RankedZone `json:"zones"`
}
