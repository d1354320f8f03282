// Package templates holds the dashboard HTML, written as plain Go
// components against the templ runtime.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/stravadash/models"
)

// DashboardData is everything the dashboard page needs: the filtered
// rows, their aggregates and the pre-rendered chart fragments.
type DashboardData struct {
	Summary      models.Summary
	Rows         []models.Row
	Records      models.Records
	Types        []string
	SelectedType string
	SelectedDays int
	UnitSystem   string
	TypeChart    string
	TrendChart   string
}

var windowOptions = []struct {
	Days  int
	Label string
}{
	{7, "Last 7 Days"},
	{30, "Last Month"},
	{90, "Last 3 Months"},
	{365, "Last Year"},
	{0, "All Fetched"},
}

func Dashboard(data DashboardData) templ.Component {
	return layout("Strava Dashboard", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeFilters(w, data); err != nil {
			return err
		}
		if err := writeKPIs(w, data); err != nil {
			return err
		}
		if err := writeRecords(w, data); err != nil {
			return err
		}

		fmt.Fprint(w, `<section class="charts">`)
		fmt.Fprint(w, `<div class="chart">`)
		if err := templ.Raw(data.TypeChart).Render(ctx, w); err != nil {
			return err
		}
		fmt.Fprint(w, `</div><div class="chart">`)
		if err := templ.Raw(data.TrendChart).Render(ctx, w); err != nil {
			return err
		}
		fmt.Fprint(w, `</div></section>`)

		return writeTable(w, data)
	}))
}

func ErrorPage(message string) templ.Component {
	return layout("Strava Dashboard - Error", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div class="error-box"><h2>Something went wrong</h2><p>%s</p><p><a href="/">Try again</a></p></div>`,
			templ.EscapeString(message))
		return err
	}))
}

func layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; margin: 2rem; background: #fafafa; color: #222; }
h1 { margin-bottom: 0.5rem; }
.kpis, .records { display: flex; gap: 1rem; flex-wrap: wrap; margin: 1rem 0; }
.card { background: #f0f2f6; border-radius: 10px; padding: 1rem; box-shadow: 0 2px 5px rgba(0,0,0,0.1); min-width: 12rem; }
.card h3 { margin: 0 0 0.3rem 0; font-size: 0.85rem; color: #555; }
.card p { margin: 0; font-size: 1.4rem; }
.card small { color: #555; }
.filters { margin: 1rem 0; }
.filters select, .filters button { padding: 0.3rem; }
.charts { display: flex; gap: 2rem; flex-wrap: wrap; }
table { border-collapse: collapse; width: 100%%; margin-top: 1rem; background: #fff; }
th, td { border: 1px solid #ddd; padding: 0.4rem 0.6rem; text-align: left; }
th { background: #f0f2f6; }
.error-box { background: #fdecea; border-left: 4px solid #c0392b; padding: 1rem 2rem; }
</style>
</head>
<body>
<h1>Strava Dashboard</h1>
`, templ.EscapeString(title)); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := fmt.Fprint(w, "</body>\n</html>\n")
		return err
	})
}

func writeFilters(w io.Writer, data DashboardData) error {
	fmt.Fprint(w, `<form class="filters" method="GET" action="/">`)

	fmt.Fprint(w, `<label>Activity <select name="type"><option value="">All Types</option>`)
	for _, t := range data.Types {
		selected := ""
		if t == data.SelectedType {
			selected = ` selected`
		}
		fmt.Fprintf(w, `<option value="%s"%s>%s</option>`, templ.EscapeString(t), selected, templ.EscapeString(t))
	}
	fmt.Fprint(w, `</select></label> `)

	fmt.Fprint(w, `<label>Window <select name="days">`)
	for _, opt := range windowOptions {
		selected := ""
		if opt.Days == data.SelectedDays {
			selected = ` selected`
		}
		fmt.Fprintf(w, `<option value="%d"%s>%s</option>`, opt.Days, selected, opt.Label)
	}
	fmt.Fprint(w, `</select></label> `)

	fmt.Fprint(w, `<label>Units <select name="units">`)
	for _, unit := range []string{models.UnitMetric, models.UnitImperial} {
		selected := ""
		if unit == data.UnitSystem {
			selected = ` selected`
		}
		fmt.Fprintf(w, `<option value="%s"%s>%s</option>`, unit, selected, unit)
	}
	fmt.Fprint(w, `</select></label> `)

	_, err := fmt.Fprint(w, `<button type="submit">Apply</button></form>`)
	return err
}

func writeKPIs(w io.Writer, data DashboardData) error {
	totalHours := data.Summary.TotalTimeMin / 60
	_, err := fmt.Fprintf(w, `<section class="kpis">
<div class="card"><h3>Total Activities</h3><p>%d</p></div>
<div class="card"><h3>Total Distance</h3><p>%s</p></div>
<div class="card"><h3>Total Elevation</h3><p>%s</p></div>
<div class="card"><h3>Total Time</h3><p>%.1f hrs</p></div>
</section>`,
		data.Summary.TotalCount,
		models.FormatDistance(data.Summary.TotalDistanceKm, data.UnitSystem),
		models.FormatElevation(data.Summary.TotalElevationM, data.UnitSystem),
		totalHours)
	return err
}

func writeRecords(w io.Writer, data DashboardData) error {
	if data.Records.LongestDuration == nil {
		return nil
	}
	fmt.Fprint(w, `<h2>Records</h2><section class="records">`)
	writeRecordCard(w, "Longest Duration", models.FormatDuration(data.Records.LongestDuration.MovingMin), data.Records.LongestDuration)
	writeRecordCard(w, "Longest Distance", models.FormatDistance(data.Records.LongestDistance.DistanceKm, data.UnitSystem), data.Records.LongestDistance)
	writeRecordCard(w, "Biggest Climb", models.FormatElevation(data.Records.BiggestClimb.ElevationM, data.UnitSystem), data.Records.BiggestClimb)
	writeRecordCard(w, "Best Hybrid Score", fmt.Sprintf("%.2f", data.Records.BestScore.Score), data.Records.BestScore)
	_, err := fmt.Fprint(w, `</section>`)
	return err
}

func writeRecordCard(w io.Writer, title, value string, row *models.Row) {
	fmt.Fprintf(w, `<div class="card"><h3>%s</h3><p>%s</p><small>%s on %s</small></div>`,
		templ.EscapeString(title),
		templ.EscapeString(value),
		templ.EscapeString(row.Name),
		row.StartDate.Format("2006-01-02"))
}

func writeTable(w io.Writer, data DashboardData) error {
	fmt.Fprint(w, `<h2>Activity Log</h2>
<table>
<tr><th>Name</th><th>Type</th><th>Date</th><th>Distance</th><th>Moving Time</th><th>Elevation</th><th>Est. Calories</th><th>Score</th></tr>`)
	for _, row := range data.Rows {
		fmt.Fprintf(w, `
<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%d kcal</td><td>%.2f</td></tr>`,
			templ.EscapeString(row.Name),
			templ.EscapeString(row.Type),
			row.StartDate.Format("2006-01-02"),
			models.FormatDistance(row.DistanceKm, data.UnitSystem),
			models.FormatDuration(row.MovingMin),
			models.FormatElevation(row.ElevationM, data.UnitSystem),
			row.Calories,
			row.Score)
	}
	_, err := fmt.Fprint(w, `
</table>`)
	return err
}
