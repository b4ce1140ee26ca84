// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound integrations of the bootstrap pipeline.
//
// The primary abstraction is [ConfigLoader], the dynamic configuration
// loader consulted once per page session before the URL override is
// applied. The package ships an HTTP implementation ([NewHTTPConfigLoader])
// that fetches a remote app-config document, and a no-op implementation
// ([NewNopConfigLoader]) used when dynamic loading is turned off.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling.
package adapter

import (
	"context"
	"net/url"

	"github.com/MKhiriev/viewer-shell/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/config_loader_mock.go -package=mock

// ConfigLoader supplies a possibly-updated configuration at startup.
type ConfigLoader interface {
	// Load receives the current base configuration (nil when absent) and the
	// page location, and returns either a full replacement configuration or
	// [models.NoReplacement]. Implementations own their timeout and retry
	// policy; errors are returned to the caller unchanged in kind.
	Load(ctx context.Context, base models.Config, location *url.URL) (models.LoadResult, error)
}
