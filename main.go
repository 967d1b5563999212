package main

import (
	"fmt"
	"os"

	"github.com/deathrjj/userhub-tui/config"
	"github.com/deathrjj/userhub-tui/dashboard"
	"github.com/deathrjj/userhub-tui/logger"
	"github.com/deathrjj/userhub-tui/reqres"
	"github.com/deathrjj/userhub-tui/session"
	"github.com/deathrjj/userhub-tui/ui"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logFile, err := logger.Init(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialise logging: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	client, err := reqres.NewClient(reqres.Options{
		BaseURL:   cfg.APIURL,
		APIKey:    cfg.APIKey,
		Timeout:   cfg.Timeout,
		UserAgent: version,
	})
	if err != nil {
		log.Error().Err(err).Msg("Error initializing reqres client")
		fmt.Fprintf(os.Stderr, "Error initializing reqres client: %v\n", err)
		os.Exit(1)
	}

	app := tview.NewApplication()
	dashboardUI := ui.NewDashboardUI(app, cfg, session.New(client), dashboard.New(client))
	dashboardUI.Start()

	log.Info().Str("api", cfg.APIURL).Str("version", version).Msg("Starting userhub")
	if err := app.Run(); err != nil {
		log.Error().Err(err).Msg("UI stopped with error")
		panic(err)
	}
	log.Info().Msg("userhub exiting")
}
