package store

import (
	"fmt"

	"github.com/MKhiriev/viewer-shell/internal/config"
	"github.com/MKhiriev/viewer-shell/internal/logger"
)

// Storages groups every storage used by the bootstrap pipeline.
type Storages struct {
	BaseConfigStorage BaseConfigStorage
	PluginRegistry    PluginRegistry
}

// NewStorages opens the base configuration and the plugin manifest named in
// cfg. An empty BaseConfigPath yields an absent base configuration.
func NewStorages(cfg config.Shell, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	baseConfigStorage := NewMemoryBaseConfigStorage(nil)
	if cfg.BaseConfigPath != "" {
		var err error
		baseConfigStorage, err = NewFileBaseConfigStorage(cfg.BaseConfigPath)
		if err != nil {
			return nil, fmt.Errorf("error creating base config storage: %w", err)
		}
	} else {
		logger.Warn().Msg("no base config path given, viewer starts without base config")
	}

	pluginRegistry, err := NewFilePluginRegistry(cfg.PluginManifestPath)
	if err != nil {
		return nil, fmt.Errorf("error creating plugin registry: %w", err)
	}

	return &Storages{
		BaseConfigStorage: baseConfigStorage,
		PluginRegistry:    pluginRegistry,
	}, nil
}
