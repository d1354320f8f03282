package models

import "math"

// Hybrid score bases: a "moderate" activity scores 10 on each component.
const (
	baseDistanceKm  = 10.0
	baseTimeHours   = 1.0
	baseElevationKm = 0.1
)

// HybridScore combines distance, duration and elevation gain into one
// 0-10 intensity number. Each component is capped at 10 and weighted:
// distance 40%, duration 35%, elevation 25%. Inputs are raw API units
// (seconds and meters).
func HybridScore(movingTimeSec int, elevationGainM, distanceM float64) float64 {
	distanceKm := distanceM / 1000
	timeHours := float64(movingTimeSec) / 3600
	elevationKm := elevationGainM / 1000

	distanceScore := math.Min(10, distanceKm/baseDistanceKm*10)
	timeScore := math.Min(10, timeHours/baseTimeHours*10)
	elevationScore := math.Min(10, elevationKm/baseElevationKm*10)

	return distanceScore*0.40 + timeScore*0.35 + elevationScore*0.25
}

// metValues are from the Compendium of Physical Activities, per Strava
// activity type. Types not listed fall back to moderate exercise.
var metValues = map[string]float64{
	"Run":            9.8, // running 6 mph
	"Ride":           8.0, // cycling 12-14 mph
	"Swim":           7.0,
	"Workout":        6.0,
	"Walk":           3.5,
	"Hike":           5.3,
	"Yoga":           2.5,
	"WeightTraining": 3.5,
}

const defaultMET = 5.0

// assumed athlete weight, Strava does not expose it on the activity list
const assumedWeightKg = 70.0

// EstimateCalories gives a rough kcal estimate for one activity:
// MET x weight (kg) x duration (hours).
func EstimateCalories(activityType string, movingTimeSec int) int {
	met, ok := metValues[activityType]
	if !ok {
		met = defaultMET
	}
	hours := float64(movingTimeSec) / 3600
	return int(math.Round(met * assumedWeightKg * hours))
}
