package server

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/stravadash/models"
)

func generateTypeBarChart(summary models.Summary) *charts.Bar {
	bar := charts.NewBar()

	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "macarons"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Distance by Activity Type",
			Subtitle: "Total kilometers per type",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:         "Distance (km)",
			NameLocation: "middle",
			NameGap:      50,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "item",
			AxisPointer: &opts.AxisPointer{
				Type: "shadow",
			},
		}),
	)

	bar.SetXAxis(summary.TypeOrder)

	barData := make([]opts.BarData, 0, len(summary.TypeOrder))
	for _, activityType := range summary.TypeOrder {
		barData = append(barData, opts.BarData{Value: summary.TypeDistance[activityType]})
	}
	bar.AddSeries("Distance (km)", barData)

	return bar
}

func generateTrendLineChart(rows []models.Row, selectedType string) *charts.Line {
	line := charts.NewLine()

	seriesName := "Distance"
	if selectedType != "" {
		tag := language.Make(selectedType)
		seriesName = cases.Title(tag).String(selectedType) + " Distance"
	}

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "macarons"}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s Over Time", seriesName),
			Subtitle: "Kilometers per activity",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{
				Rotate: 45,
			},
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "item",
			AxisPointer: &opts.AxisPointer{
				Type: "cross",
			},
		}),
	)

	// Rows arrive newest first, the chart reads left to right.
	xAxis := make([]string, 0, len(rows))
	lineData := make([]opts.LineData, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		xAxis = append(xAxis, rows[i].StartDate.Format("01-02"))
		lineData = append(lineData, opts.LineData{Value: rows[i].DistanceKm})
	}

	line.SetXAxis(xAxis)
	line.AddSeries(seriesName, lineData)
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	return line
}

type chartRenderer interface {
	Render(w io.Writer) error
}

func renderChart(chart chartRenderer) string {
	var buf bytes.Buffer
	if err := chart.Render(&buf); err != nil {
		log.Errorf("failed to render chart: %s", err)
		return ""
	}
	return buf.String()
}
