package service

import (
	"fmt"

	"github.com/MKhiriev/viewer-shell/internal/adapter"
	"github.com/MKhiriev/viewer-shell/internal/config"
	"github.com/MKhiriev/viewer-shell/internal/logger"
	"github.com/MKhiriev/viewer-shell/internal/shell"
	"github.com/MKhiriev/viewer-shell/internal/store"
)

type Services struct {
	Bootstrapper    Bootstrapper
	OverrideService OverrideService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, loader adapter.ConfigLoader, mounter shell.Mounter, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		Bootstrapper:    NewBootstrapper(storages, loader, mounter, logger),
		OverrideService: NewOverrideService(logger),
		AppInfoService:  appInfoService,
	}, nil
}
