package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/viewer-shell/internal/adapter"
	"github.com/MKhiriev/viewer-shell/internal/config"
	"github.com/MKhiriev/viewer-shell/internal/handler"
	"github.com/MKhiriev/viewer-shell/internal/logger"
	"github.com/MKhiriev/viewer-shell/internal/server"
	"github.com/MKhiriev/viewer-shell/internal/service"
	"github.com/MKhiriev/viewer-shell/internal/shell"
	"github.com/MKhiriev/viewer-shell/internal/store"
	"github.com/MKhiriev/viewer-shell/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger(config.DefaultAppName).Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.NewLogger(cfg.App.Name)
	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(cfg.Shell, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	loader := adapter.NewNopConfigLoader()
	if cfg.Loader.Enabled {
		if loader, err = adapter.NewHTTPConfigLoader(cfg.Loader, log); err != nil {
			log.Fatal().Err(err).Msg("error creating dynamic config loader")
		}
	}

	mounter, err := shell.NewDocumentMounter(cfg.Shell.IndexPath)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating shell mounter")
	}

	services, err := service.NewServices(storages, loader, mounter, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
