package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSecretsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "secrets.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadSecrets(t *testing.T) {
	path := writeSecretsFile(t, `strava_access_token = "abc123"`)

	secrets, err := LoadSecrets(path)
	require.NoError(t, err)
	assert.Equal(t, "abc123", secrets.AccessToken)
	assert.False(t, secrets.CanRefresh())
}

func TestLoadSecrets_WithRefreshCredentials(t *testing.T) {
	path := writeSecretsFile(t, `
strava_access_token = "abc123"
strava_client_id = "99999"
strava_client_secret = "shhh"
strava_refresh_token = "refresh-me"
`)

	secrets, err := LoadSecrets(path)
	require.NoError(t, err)
	assert.True(t, secrets.CanRefresh())
	assert.Equal(t, "99999", secrets.ClientID)
}

func TestLoadSecrets_MissingFile(t *testing.T) {
	_, err := LoadSecrets(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestLoadSecrets_MissingToken(t *testing.T) {
	path := writeSecretsFile(t, `some_other_key = "whatever"`)

	_, err := LoadSecrets(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing strava_access_token")
}

func TestLoadSecrets_Malformed(t *testing.T) {
	path := writeSecretsFile(t, `this is not toml ===`)

	_, err := LoadSecrets(path)
	require.Error(t, err)
}

func TestLoadSettings_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "LOG_LEVEL", "LOG_FILE", "LOG_TO_STDOUT", "SECRETS_FILE", "OPEN_BROWSER"} {
		t.Setenv(key, "")
	}

	settings := LoadSettings()
	assert.Equal(t, "8080", settings.Port)
	assert.Equal(t, "info", settings.LogLevel)
	assert.Equal(t, DefaultSecretsFile, settings.SecretsFile)
	assert.True(t, settings.LogToStdout)
	assert.False(t, settings.OpenBrowser)
}

func TestLoadSettings_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("OPEN_BROWSER", "true")
	t.Setenv("LOG_TO_STDOUT", "false")

	settings := LoadSettings()
	assert.Equal(t, "9090", settings.Port)
	assert.Equal(t, "debug", settings.LogLevel)
	assert.True(t, settings.OpenBrowser)
	assert.False(t, settings.LogToStdout)
}
