package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stravadash/strava"
)

func TestNormalize_UnitConversions(t *testing.T) {
	start := time.Date(2026, 8, 20, 7, 30, 0, 0, time.UTC)
	activities := []strava.Activity{
		{
			ID:            101,
			Name:          "Morning Run",
			Type:          "Run",
			StartDate:     start,
			Distance:      5000,
			MovingTime:    1800,
			ElevationGain: 42,
		},
	}

	rows := Normalize(activities)
	require.Len(t, rows, 1)

	assert.Equal(t, int64(101), rows[0].ID)
	assert.Equal(t, 5.00, rows[0].DistanceKm)
	assert.Equal(t, 30.00, rows[0].MovingMin)
	assert.Equal(t, 42.0, rows[0].ElevationM)
	assert.Equal(t, start, rows[0].StartDate)
}

func TestNormalize_Rounding(t *testing.T) {
	activities := []strava.Activity{
		{
			Name:       "Lunch Ride",
			Type:       "Ride",
			StartDate:  time.Now(),
			Distance:   12345, // 12.345 km
			MovingTime: 2000,  // 33.333... min
		},
	}

	rows := Normalize(activities)
	require.Len(t, rows, 1)

	assert.Equal(t, 12.35, rows[0].DistanceKm)
	assert.Equal(t, 33.33, rows[0].MovingMin)
}

func TestNormalize_OrderPreserved(t *testing.T) {
	now := time.Now()
	activities := []strava.Activity{
		{ID: 3, Name: "c", Type: "Run", StartDate: now},
		{ID: 2, Name: "b", Type: "Ride", StartDate: now.Add(-time.Hour)},
		{ID: 1, Name: "a", Type: "Run", StartDate: now.Add(-2 * time.Hour)},
	}

	rows := Normalize(activities)
	require.Len(t, rows, 3)
	assert.Equal(t, int64(3), rows[0].ID)
	assert.Equal(t, int64(2), rows[1].ID)
	assert.Equal(t, int64(1), rows[2].ID)
}

func TestNormalize_DropsIncompleteRecords(t *testing.T) {
	now := time.Now()
	activities := []strava.Activity{
		{ID: 1, Name: "ok", Type: "Run", StartDate: now},
		{ID: 2, Name: "", Type: "Run", StartDate: now},
		{ID: 3, Name: "no type", Type: "", StartDate: now},
		{ID: 4, Name: "no date", Type: "Run"},
	}

	rows := Normalize(activities)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(1), rows[0].ID)
}

func TestNormalize_MissingElevationDefaultsToZero(t *testing.T) {
	activities := []strava.Activity{
		{Name: "Pool Swim", Type: "Swim", StartDate: time.Now(), Distance: 1500, MovingTime: 2400},
	}

	rows := Normalize(activities)
	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].ElevationM)
}

func TestNormalize_Empty(t *testing.T) {
	assert.Empty(t, Normalize(nil))
	assert.Empty(t, Normalize([]strava.Activity{}))
}
