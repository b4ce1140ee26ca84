package service

import (
	"context"
	"io"
	"net/url"

	"github.com/MKhiriev/viewer-shell/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Bootstrapper resolves the viewer configuration of one page session and
// mounts the UI shell.
type Bootstrapper interface {
	// Resolve runs the configuration pipeline for location (base config,
	// dynamic loader, URL override) and returns the final configuration.
	Resolve(ctx context.Context, location *url.URL) (models.Config, error)

	// Run resolves the configuration for location and mounts the shell into
	// w exactly once. It returns the startup properties that were mounted.
	Run(ctx context.Context, location *url.URL, w io.Writer) (models.StartupProps, error)
}

// OverrideService encodes partial configurations into the config query
// parameter understood by the URL override extractor.
type OverrideService interface {
	// EncodeOverride keeps only the keys the merge step applies and returns
	// the base64 value of the config query parameter.
	EncodeOverride(ctx context.Context, override models.Config) (string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
