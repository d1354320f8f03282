package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const DefaultSecretsFile = "secrets.toml"

// Settings come from the environment (an optional .env is loaded in main).
type Settings struct {
	Port        string
	LogLevel    string
	LogFile     string
	LogToStdout bool
	SecretsFile string
	OpenBrowser bool
}

func LoadSettings() Settings {
	s := Settings{
		Port:        envOr("PORT", "8080"),
		LogLevel:    envOr("LOG_LEVEL", "info"),
		LogFile:     os.Getenv("LOG_FILE"),
		LogToStdout: envOr("LOG_TO_STDOUT", "true") == "true",
		SecretsFile: envOr("SECRETS_FILE", DefaultSecretsFile),
		OpenBrowser: envOr("OPEN_BROWSER", "false") == "true",
	}
	return s
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Secrets holds the Strava credentials, read once per run from a local
// TOML file. Only the access token is required; the other three enable
// automatic token refresh.
type Secrets struct {
	AccessToken  string `toml:"strava_access_token"`
	ClientID     string `toml:"strava_client_id"`
	ClientSecret string `toml:"strava_client_secret"`
	RefreshToken string `toml:"strava_refresh_token"`
}

// CanRefresh reports whether the secrets carry everything needed to
// exchange a refresh token for new access tokens.
func (s Secrets) CanRefresh() bool {
	return s.ClientID != "" && s.ClientSecret != "" && s.RefreshToken != ""
}

func LoadSecrets(path string) (Secrets, error) {
	var secrets Secrets
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Secrets{}, fmt.Errorf("secrets file %s does not exist", path)
	}
	if _, err := toml.DecodeFile(path, &secrets); err != nil {
		return Secrets{}, fmt.Errorf("failed to parse secrets file %s: %w", path, err)
	}
	if secrets.AccessToken == "" && !secrets.CanRefresh() {
		return Secrets{}, fmt.Errorf("missing strava_access_token in %s", path)
	}
	return secrets, nil
}
