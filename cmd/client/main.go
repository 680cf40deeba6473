package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-user-directory/internal/adapter"
	"github.com/MKhiriev/go-user-directory/internal/client"
	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/service"
	"github.com/MKhiriev/go-user-directory/internal/tui"
	"github.com/MKhiriev/go-user-directory/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("go-user-directory").Fatal().Err(err).Msg("error getting configs")
	}

	log, closeLog := logger.NewClientLogger("go-user-directory", cfg.Log.File, cfg.Log.Level)
	defer closeLog()
	log.Debug().Any("config", cfg).Msg("received configs")

	storeAdapter, err := adapter.NewHTTPStoreAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create store adapter")
	}

	identityAdapter, err := adapter.NewHTTPIdentityAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create identity adapter")
	}

	services := service.NewClientServices(storeAdapter, identityAdapter, log)

	ui, err := tui.New(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), cfg.App.NoticeTTL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		_ = closeLog()
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
