package models

// Zone represents one row of the taxi zone lookup table
type Zone struct {
	LocationID  int    `json:"location_id" db:"location_id"`
	Borough     string `json:"borough" db:"borough"`
	ZoneName    string `json:"zone_name" db:"zone_name"`
	ServiceZone string `json:"service_zone,omitempty" db:"service_zone"`
}

// ValidZoneSet is an immutable membership set of known location IDs, loaded
// once before a pipeline run. The pipeline only ever asks "is this ID known",
// so nothing beyond membership is exposed.
type ValidZoneSet struct {
	ids map[int]struct{}
}

// NewValidZoneSet builds a zone set from a slice of zones
func NewValidZoneSet(zones []Zone) ValidZoneSet {
	ids := make(map[int]struct{}, len(zones))
	for _, z := range zones {
		ids[z.LocationID] = struct{}{}
	}
	return ValidZoneSet{ids: ids}
}

// NewValidZoneSetFromIDs builds a zone set directly from location IDs
func NewValidZoneSetFromIDs(locationIDs []int) ValidZoneSet {
	ids := make(map[int]struct{}, len(locationIDs))
	for _, id := range locationIDs {
		ids[id] = struct{}{}
	}
	return ValidZoneSet{ids: ids}
}

// Contains reports whether the location ID is a known zone
func (s ValidZoneSet) Contains(locationID int) bool {
	_, ok := s.ids[locationID]
	return ok
}

// Size returns the number of known zones
func (s ValidZoneSet) Size() int {
	return len(s.ids)
}
