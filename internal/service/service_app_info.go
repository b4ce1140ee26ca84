package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/viewer-shell/internal/config"
	"github.com/MKhiriev/viewer-shell/internal/logger"
)

type appInfoService struct {
	appVersion string
}

// NewAppInfoService returns an [AppInfoService] reporting cfg.Version.
// A blank version is rejected.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().Str("app", cfg.Name).Str("version", version).Msg("app info service created")

	return &appInfoService{appVersion: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.appVersion
}
