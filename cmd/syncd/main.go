package main

import (
	"fmt"

	"github.com/MKhiriev/go-local-sync/internal/app"
	"github.com/MKhiriev/go-local-sync/internal/config"
	"github.com/MKhiriev/go-local-sync/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("syncd")
	cfg, err := config.GetSyncConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.Logging.File != "" {
		log = logger.NewFileLogger("syncd", cfg.Logging.File)
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	var a app.Runner
	a, err = app.NewApp(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init sync app error")
	}

	if err = a.Run(); err != nil {
		log.Fatal().Err(err).Msg("sync app run error")
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
