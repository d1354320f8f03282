package strava

import "fmt"

// AuthError means the access token is missing, malformed or was rejected
// by Strava. The token is short-lived and has to be refreshed by the
// operator (or via a refresh token in the secrets file).
type AuthError struct {
	StatusCode int
	Reason     string
}

func (e *AuthError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("strava authentication failed (%d): %s", e.StatusCode, e.Reason)
	}
	return "strava authentication failed: " + e.Reason
}

// NetworkError wraps a transport-level failure or timeout.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "strava request failed: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DataError means Strava responded, but not with the JSON we expect.
type DataError struct {
	Err error
}

func (e *DataError) Error() string {
	return "strava returned malformed data: " + e.Err.Error()
}

func (e *DataError) Unwrap() error {
	return e.Err
}
