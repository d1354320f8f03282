package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:30:00", FormatDuration(30))
	assert.Equal(t, "01:30:30", FormatDuration(90.5))
	assert.Equal(t, "00:00:00", FormatDuration(0))
	assert.Equal(t, "10:00:00", FormatDuration(600))
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "5.00 km", FormatDistance(5, UnitMetric))
	assert.Equal(t, "500 m", FormatDistance(0.5, UnitMetric))
	assert.Equal(t, "3.11 mi", FormatDistance(5, UnitImperial))
	assert.Equal(t, "328 ft", FormatDistance(0.1, UnitImperial))
}

func TestFormatElevation(t *testing.T) {
	assert.Equal(t, "120 m", FormatElevation(120, UnitMetric))
	assert.Equal(t, "394 ft", FormatElevation(120, UnitImperial))
}
