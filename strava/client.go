package strava

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

const (
	defaultBaseURL = "https://www.strava.com/api/v3"

	// Strava caps per_page at 200; the dashboard only ever shows the
	// most recent page of 30.
	activitiesPerPage = 30
)

// Activity is one entry of the athlete activities list, as returned by
// GET /athlete/activities. Units are the API's: meters and seconds.
type Activity struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	StartDate     time.Time `json:"start_date"`
	Distance      float64   `json:"distance"`
	MovingTime    int       `json:"moving_time"`
	ElevationGain float64   `json:"total_elevation_gain"`
}

type Client struct {
	httpClient  *http.Client
	baseURL     string
	tokenSource oauth2.TokenSource
	perPage     int
}

func NewClient(tokenSource oauth2.TokenSource) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		baseURL:     defaultBaseURL,
		tokenSource: tokenSource,
		perPage:     activitiesPerPage,
	}
}

// NewClientWithBaseURL is used by tests to point the client at a fake API.
func NewClientWithBaseURL(tokenSource oauth2.TokenSource, httpClient *http.Client, baseURL string) *Client {
	return &Client{
		httpClient:  httpClient,
		baseURL:     baseURL,
		tokenSource: tokenSource,
		perPage:     activitiesPerPage,
	}
}

// GetActivities fetches the most recent page of athlete activities, newest
// first. One request, no retries: auth failures come back as *AuthError,
// transport failures as *NetworkError and undecodable bodies as *DataError.
func (c *Client) GetActivities(ctx context.Context) ([]Activity, error) {
	token, err := c.tokenSource.Token()
	if err != nil {
		return nil, &AuthError{Reason: err.Error()}
	}
	if token.AccessToken == "" {
		return nil, &AuthError{Reason: "access token is empty"}
	}

	url := fmt.Sprintf("%s/athlete/activities?page=1&per_page=%d", c.baseURL, c.perPage)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create activities request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	log.Debugf("fetching recent activities: %s", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, &AuthError{StatusCode: resp.StatusCode, Reason: string(bodyBytes)}
	case resp.StatusCode != http.StatusOK:
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, &DataError{Err: fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(bodyBytes))}
	}

	var activities []Activity
	if err := json.NewDecoder(resp.Body).Decode(&activities); err != nil {
		return nil, &DataError{Err: err}
	}

	log.Debugf("fetched %d activities", len(activities))
	return activities, nil
}
