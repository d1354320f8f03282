package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHybridScore(t *testing.T) {
	// the reference activity: 10 km in 1 hour with 100 m of climbing
	// maxes out every component
	assert.InDelta(t, 10.0, HybridScore(3600, 100, 10000), 0.001)

	// components cap at 10, a double-everything activity scores the same
	assert.InDelta(t, 10.0, HybridScore(7200, 200, 20000), 0.001)

	assert.Zero(t, HybridScore(0, 0, 0))

	// 5 km in 30 min, flat: (5*0.4) + (5*0.35) + 0 = 3.75
	assert.InDelta(t, 3.75, HybridScore(1800, 0, 5000), 0.001)
}

func TestEstimateCalories(t *testing.T) {
	// Run for an hour: 9.8 MET * 70 kg * 1 h
	assert.Equal(t, 686, EstimateCalories("Run", 3600))

	// half an hour of yoga: 2.5 * 70 * 0.5
	assert.Equal(t, 88, EstimateCalories("Yoga", 1800))

	// unknown types fall back to moderate effort: 5.0 * 70 * 0.5
	assert.Equal(t, 175, EstimateCalories("Windsurf", 1800))

	assert.Zero(t, EstimateCalories("Run", 0))
}
