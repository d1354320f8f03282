package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	log "github.com/sirupsen/logrus"

	"github.com/stravadash/models"
	"github.com/stravadash/strava"
	"github.com/stravadash/templates"
)

// ActivityFetcher is what the dashboard needs from the Strava client.
type ActivityFetcher interface {
	GetActivities(ctx context.Context) ([]strava.Activity, error)
}

func (s *Server) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	selectedType := r.URL.Query().Get("type")
	days := parseDays(r.URL.Query().Get("days"))
	unitSystem := parseUnits(r.URL.Query().Get("units"))

	activities, err := s.fetcher.GetActivities(r.Context())
	if err != nil {
		s.renderFetchError(w, r, err)
		return
	}

	rows := models.Normalize(activities)
	windowed := models.FilterWithinDays(rows, days, s.now())
	filtered := models.FilterByType(windowed, selectedType)

	summary := models.Summarize(filtered)
	records := models.FindRecords(filtered)

	data := templates.DashboardData{
		Summary:      summary,
		Rows:         filtered,
		Records:      records,
		Types:        models.Types(rows),
		SelectedType: selectedType,
		SelectedDays: days,
		UnitSystem:   unitSystem,
		TypeChart:    renderChart(generateTypeBarChart(summary)),
		TrendChart:   renderChart(generateTrendLineChart(filtered, selectedType)),
	}

	templ.Handler(templates.Dashboard(data)).ServeHTTP(w, r)
}

// renderFetchError maps the fetch error taxonomy onto a user-visible
// error page. No retries: the run stops here.
func (s *Server) renderFetchError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		authErr *strava.AuthError
		netErr  *strava.NetworkError
		dataErr *strava.DataError
	)

	status := http.StatusInternalServerError
	message := err.Error()

	switch {
	case errors.As(err, &authErr):
		status = http.StatusUnauthorized
		message = "Strava rejected the access token. It has likely expired - refresh it and update secrets.toml."
	case errors.As(err, &netErr):
		status = http.StatusBadGateway
		message = "Could not reach Strava. Check the connection and reload."
	case errors.As(err, &dataErr):
		status = http.StatusBadGateway
		message = "Strava returned an unexpected response. Reload to try again."
	}

	log.Errorf("activity fetch failed: %s", err)
	templ.Handler(templates.ErrorPage(message), templ.WithStatus(status)).ServeHTTP(w, r)
}

func parseDays(raw string) int {
	if raw == "" {
		return 0 // all fetched activities
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 0 {
		return 0
	}
	return days
}

func parseUnits(raw string) string {
	if raw == models.UnitImperial {
		return models.UnitImperial
	}
	return models.UnitMetric
}

func (s *Server) healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
