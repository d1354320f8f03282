package strava

import (
	"context"
	"time"

	"golang.org/x/oauth2"
)

var oauthEndpoint = oauth2.Endpoint{
	AuthURL:  "https://www.strava.com/oauth/authorize",
	TokenURL: "https://www.strava.com/oauth/token",
}

// StaticTokenSource wraps a bearer token taken verbatim from the secrets
// file. When it expires the operator has to replace it by hand.
func StaticTokenSource(accessToken string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
}

// RefreshingTokenSource exchanges a long-lived refresh token for fresh
// access tokens against the Strava OAuth endpoint. Used when the secrets
// file also carries client_id / client_secret / refresh_token.
func RefreshingTokenSource(ctx context.Context, clientID, clientSecret, refreshToken string) oauth2.TokenSource {
	conf := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     oauthEndpoint,
	}
	// Expiry in the past forces a refresh on first use.
	seed := &oauth2.Token{
		RefreshToken: refreshToken,
		Expiry:       time.Now().Add(-time.Minute),
	}
	return conf.TokenSource(ctx, seed)
}
