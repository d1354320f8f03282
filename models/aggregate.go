package models

import "time"

// Summary holds the dashboard KPI totals plus distance grouped by
// activity type. It is recomputed from the current rows on every run.
type Summary struct {
	TotalCount      int
	TotalDistanceKm float64
	TotalElevationM float64
	TotalTimeMin    float64
	// TypeOrder keeps the first-seen order of the TypeDistance keys, since
	// map iteration order would shuffle the chart between reloads.
	TypeOrder    []string
	TypeDistance map[string]float64
}

// Summarize computes the summary over all rows. An empty input yields
// zero totals and an empty grouping.
func Summarize(rows []Row) Summary {
	summary := Summary{
		TotalCount:   len(rows),
		TypeDistance: make(map[string]float64),
	}
	for _, row := range rows {
		summary.TotalDistanceKm += row.DistanceKm
		summary.TotalElevationM += row.ElevationM
		summary.TotalTimeMin += row.MovingMin
		if _, seen := summary.TypeDistance[row.Type]; !seen {
			summary.TypeOrder = append(summary.TypeOrder, row.Type)
		}
		summary.TypeDistance[row.Type] += row.DistanceKm
	}
	return summary
}

// FilterByType keeps rows whose activity type matches exactly. An empty
// type keeps everything.
func FilterByType(rows []Row, activityType string) []Row {
	if activityType == "" {
		return rows
	}
	filtered := make([]Row, 0, len(rows))
	for _, row := range rows {
		if row.Type == activityType {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// FilterWithinDays keeps rows started within the last `days` days before
// now. Zero or negative days keeps everything.
func FilterWithinDays(rows []Row, days int, now time.Time) []Row {
	if days <= 0 {
		return rows
	}
	cutoff := now.AddDate(0, 0, -days)
	filtered := make([]Row, 0, len(rows))
	for _, row := range rows {
		if row.StartDate.After(cutoff) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// Types lists the distinct activity types in first-seen order, for the
// dashboard type filter.
func Types(rows []Row) []string {
	seen := make(map[string]bool)
	var types []string
	for _, row := range rows {
		if !seen[row.Type] {
			seen[row.Type] = true
			types = append(types, row.Type)
		}
	}
	return types
}

// Records are the standout activities of the current window.
type Records struct {
	LongestDuration *Row
	LongestDistance *Row
	BiggestClimb    *Row
	BestScore       *Row
}

func FindRecords(rows []Row) Records {
	var records Records
	for i := range rows {
		row := &rows[i]
		if records.LongestDuration == nil || row.MovingMin > records.LongestDuration.MovingMin {
			records.LongestDuration = row
		}
		if records.LongestDistance == nil || row.DistanceKm > records.LongestDistance.DistanceKm {
			records.LongestDistance = row
		}
		if records.BiggestClimb == nil || row.ElevationM > records.BiggestClimb.ElevationM {
			records.BiggestClimb = row
		}
		if records.BestScore == nil || row.Score > records.BestScore.Score {
			records.BestScore = row
		}
	}
	return records
}
