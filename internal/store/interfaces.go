// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store provides read access to the artifacts produced by the SPA
// build: the statically embedded base configuration and the manifest of
// bundled extensions and modes.
package store

import (
	"context"

	"github.com/MKhiriev/viewer-shell/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BaseConfigStorage returns the default configuration a page session starts
// with.
type BaseConfigStorage interface {
	// BaseConfig returns an independent deep copy of the base configuration,
	// so callers may mutate the result freely. A nil result means the
	// viewer has no base configuration.
	BaseConfig(ctx context.Context) (models.Config, error)
}

// PluginRegistry exposes the extensions and modes registered at build time.
type PluginRegistry interface {
	// Extensions returns the bundled extensions in registration order.
	Extensions(ctx context.Context) ([]models.Extension, error)

	// Modes returns the bundled modes in registration order.
	Modes(ctx context.Context) ([]models.Mode, error)
}
