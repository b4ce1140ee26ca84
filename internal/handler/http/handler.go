package http

import (
	"net/http"

	"github.com/MKhiriev/viewer-shell/internal/config"
	"github.com/MKhiriev/viewer-shell/internal/logger"
	"github.com/MKhiriev/viewer-shell/internal/service"
	"github.com/MKhiriev/viewer-shell/internal/utils"
)

type Handler struct {
	services *service.Services

	assets        http.FileSystem
	indexPath     string
	uuidGenerator *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Shell, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	h := &Handler{
		services:      services,
		indexPath:     cfg.IndexPath,
		uuidGenerator: utils.NewUUIDGenerator(),
		logger:        logger,
	}
	if cfg.StaticDir != "" {
		h.assets = http.Dir(cfg.StaticDir)
	}

	return h
}
