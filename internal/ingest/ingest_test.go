package ingest

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tripCSV = `tpep_pickup_datetime,tpep_dropoff_datetime,passenger_count,trip_distance,PULocationID,DOLocationID,payment_type,fare_amount,tip_amount,total_amount
2024-01-01 08:00:00,2024-01-01 08:10:00,1,2.0,10,20,1,10.0,2.0,12.0
2024-01-02 23:30:00,,1.0,3.5,30,,2,14.5,,14.5
not-a-date,2024-01-03 10:00:00,abc,-1,10,20,1,10.0,0,10.0
`

func TestReadTrips(t *testing.T) {
	trips, err := ReadTrips(strings.NewReader(tripCSV))
	require.NoError(t, err)
	require.Len(t, trips, 3)

	first := trips[0]
	require.NotNil(t, first.PickupTime)
	assert.Equal(t, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), *first.PickupTime)
	require.NotNil(t, first.DropoffTime)
	require.NotNil(t, first.PULocationID)
	assert.Equal(t, 10, *first.PULocationID)
	require.NotNil(t, first.FareAmount)
	assert.Equal(t, 10.0, *first.FareAmount)
	require.NotNil(t, first.PassengerCount)
	assert.Equal(t, 1, *first.PassengerCount)

	second := trips[1]
	assert.Nil(t, second.DropoffTime, "blank cell must be nil, not zero")
	assert.Nil(t, second.DOLocationID)
	assert.Nil(t, second.TipAmount)
	require.NotNil(t, second.PassengerCount, "float-formatted integers are accepted")
	assert.Equal(t, 1, *second.PassengerCount)

	third := trips[2]
	assert.Nil(t, third.PickupTime, "malformed timestamp must be nil")
	assert.Nil(t, third.PassengerCount, "non-numeric count must be nil")
	require.NotNil(t, third.TripDistance, "negative values are kept for the pipeline to reject")
	assert.Equal(t, -1.0, *third.TripDistance)
}

func TestReadTrips_NoHeader(t *testing.T) {
	_, err := ReadTrips(strings.NewReader(""))
	assert.Error(t, err)
}

const zoneCSV = `LocationID,Borough,Zone,service_zone
1,EWR,Newark Airport,EWR
4,Manhattan,Alphabet City,Yellow Zone
oops,Nowhere,Broken Row,
13,Manhattan,Battery Park,Yellow Zone
`

func TestReadZones(t *testing.T) {
	zones, err := ReadZones(strings.NewReader(zoneCSV))
	require.NoError(t, err)
	require.Len(t, zones, 3, "row with unparseable ID is skipped")

	assert.Equal(t, 1, zones[0].LocationID)
	assert.Equal(t, "EWR", zones[0].Borough)
	assert.Equal(t, "Alphabet City", zones[1].ZoneName)
	assert.Equal(t, "Yellow Zone", zones[2].ServiceZone)
}
