// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/MKhiriev/viewer-shell/internal/adapter"
	"github.com/MKhiriev/viewer-shell/internal/logger"
	"github.com/MKhiriev/viewer-shell/internal/shell"
	"github.com/MKhiriev/viewer-shell/internal/store"
	"github.com/MKhiriev/viewer-shell/models"
)

type bootstrapper struct {
	baseConfigStorage store.BaseConfigStorage
	pluginRegistry    store.PluginRegistry
	loader            adapter.ConfigLoader
	mounter           shell.Mounter

	logger *logger.Logger
}

func NewBootstrapper(storages *store.Storages, loader adapter.ConfigLoader, mounter shell.Mounter, logger *logger.Logger) Bootstrapper {
	return &bootstrapper{
		baseConfigStorage: storages.BaseConfigStorage,
		pluginRegistry:    storages.PluginRegistry,
		loader:            loader,
		mounter:           mounter,
		logger:            logger,
	}
}

func (b *bootstrapper) Resolve(ctx context.Context, location *url.URL) (models.Config, error) {
	p, err := b.resolve(ctx, location)
	if err != nil {
		return nil, err
	}

	return p.config(), nil
}

func (b *bootstrapper) Run(ctx context.Context, location *url.URL, w io.Writer) (models.StartupProps, error) {
	p, err := b.resolve(ctx, location)
	if err != nil {
		return models.StartupProps{}, err
	}

	extensions, err := b.pluginRegistry.Extensions(ctx)
	if err != nil {
		return models.StartupProps{}, fmt.Errorf("error reading default extensions: %w", err)
	}

	modes, err := b.pluginRegistry.Modes(ctx)
	if err != nil {
		return models.StartupProps{}, fmt.Errorf("error reading default modes: %w", err)
	}

	return p.mount(ctx, b.mounter, w, extensions, modes)
}

// resolve seeds a new pipeline with the base configuration and runs it up
// to and including the URL override.
func (b *bootstrapper) resolve(ctx context.Context, location *url.URL) (*pipeline, error) {
	log := logger.FromContextOr(ctx, b.logger)
	if location == nil {
		location = &url.URL{}
	}

	base, err := b.baseConfigStorage.BaseConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading base config: %w", err)
	}

	p := newPipeline(base, log)
	if err = p.awaitDynamicConfig(ctx, b.loader, location); err != nil {
		return nil, err
	}
	if err = p.applyOverride(location.Query()); err != nil {
		return nil, err
	}

	return p, nil
}
