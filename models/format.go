package models

import "fmt"

const (
	metersPerFoot = 0.3048
	milesPerKm    = 0.621371

	UnitMetric   = "metric"
	UnitImperial = "imperial"
)

// FormatDuration renders minutes as HH:MM:SS.
func FormatDuration(minutes float64) string {
	totalSeconds := int(minutes * 60)
	hours := totalSeconds / 3600
	mins := (totalSeconds % 3600) / 60
	secs := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, mins, secs)
}

// FormatDistance renders a distance in kilometers for the chosen unit
// system, falling back to meters / feet below one kilometer / 0.1 mile.
func FormatDistance(km float64, unitSystem string) string {
	if unitSystem == UnitImperial {
		miles := km * milesPerKm
		if miles >= 0.1 {
			return fmt.Sprintf("%.2f mi", miles)
		}
		feet := km * 1000 / metersPerFoot
		return fmt.Sprintf("%.0f ft", feet)
	}
	if km >= 1 {
		return fmt.Sprintf("%.2f km", km)
	}
	return fmt.Sprintf("%.0f m", km*1000)
}

// FormatElevation renders an elevation gain in meters for the chosen
// unit system.
func FormatElevation(meters float64, unitSystem string) string {
	if unitSystem == UnitImperial {
		return fmt.Sprintf("%.0f ft", meters/metersPerFoot)
	}
	return fmt.Sprintf("%.0f m", meters)
}
