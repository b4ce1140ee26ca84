// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/MKhiriev/viewer-shell/models"
)

type pluginRegistry struct {
	manifest models.PluginManifest
}

// NewFilePluginRegistry reads the plugin manifest at path. An empty path
// yields a registry without extensions or modes.
func NewFilePluginRegistry(path string) (PluginRegistry, error) {
	if path == "" {
		return NewPluginRegistry(models.PluginManifest{}), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingPluginManifest, err)
	}

	var manifest models.PluginManifest
	if err = json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadingPluginManifest, path, err)
	}

	return NewPluginRegistry(manifest), nil
}

// NewPluginRegistry returns a [PluginRegistry] serving manifest.
func NewPluginRegistry(manifest models.PluginManifest) PluginRegistry {
	return &pluginRegistry{manifest: manifest}
}

func (p *pluginRegistry) Extensions(ctx context.Context) ([]models.Extension, error) {
	return slices.Clone(p.manifest.Extensions), nil
}

func (p *pluginRegistry) Modes(ctx context.Context) ([]models.Mode, error) {
	return slices.Clone(p.manifest.Modes), nil
}
