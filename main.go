package main

import (
	"context"
	"fmt"

	"github.com/cli/browser"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/stravadash/config"
	"github.com/stravadash/logging"
	"github.com/stravadash/server"
	"github.com/stravadash/strava"
)

func main() {
	// .env is optional, everything has a default
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %s", err)
	}

	settings := config.LoadSettings()
	logging.Setup(logging.SetupParams{
		LogFileName: settings.LogFile,
		LogToStdout: settings.LogToStdout,
		LogLevel:    settings.LogLevel,
	})

	secrets, err := config.LoadSecrets(settings.SecretsFile)
	if err != nil {
		log.Fatalf("failed to load secrets: %s", err)
	}

	var tokenSource oauth2.TokenSource
	if secrets.CanRefresh() {
		log.Info("refresh credentials found, tokens will be refreshed automatically")
		tokenSource = strava.RefreshingTokenSource(
			context.Background(),
			secrets.ClientID, secrets.ClientSecret, secrets.RefreshToken,
		)
	} else {
		tokenSource = strava.StaticTokenSource(secrets.AccessToken)
	}

	srv := server.New(strava.NewClient(tokenSource))

	if settings.OpenBrowser {
		dashboardURL := fmt.Sprintf("http://localhost:%s", settings.Port)
		go func() {
			if err := browser.OpenURL(dashboardURL); err != nil {
				log.Warnf("failed to open browser: %s", err)
			}
		}()
	}

	if err := srv.Serve(settings.Port); err != nil {
		log.Fatalf("server failed: %s", err)
	}
}
