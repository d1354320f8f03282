package models

import (
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/stravadash/strava"
)

// Row is a display-ready projection of one Strava activity: distance in
// kilometers, moving time in minutes, elevation untouched (meters).
type Row struct {
	ID         int64
	Name       string
	Type       string
	StartDate  time.Time
	DistanceKm float64
	MovingMin  float64
	ElevationM float64
	Score      float64
	Calories   int
}

// Normalize converts raw activities to rows, one per activity, preserving
// the API order (most recent first). A record without a name, type or
// start date is unusable for display and gets dropped with a warning;
// missing elevation defaults to zero.
func Normalize(activities []strava.Activity) []Row {
	rows := make([]Row, 0, len(activities))
	for _, a := range activities {
		if a.Name == "" || a.Type == "" || a.StartDate.IsZero() {
			log.Warnf("dropping incomplete activity record (id=%d name=%q type=%q)", a.ID, a.Name, a.Type)
			continue
		}
		rows = append(rows, Row{
			ID:         a.ID,
			Name:       a.Name,
			Type:       a.Type,
			StartDate:  a.StartDate,
			DistanceKm: round2(a.Distance / 1000),
			MovingMin:  round2(float64(a.MovingTime) / 60),
			ElevationM: a.ElevationGain,
			Score:      HybridScore(a.MovingTime, a.ElevationGain, a.Distance),
			Calories:   EstimateCalories(a.Type, a.MovingTime),
		})
	}
	return rows
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
