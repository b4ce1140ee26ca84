// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// viewer-shell service. It aggregates all sub-configurations and is
// populated by merging defaults, environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the service name and
	// version.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Shell holds the locations of the SPA document, its static assets,
	// the base viewer configuration and the plugin manifest.
	Shell Shell `envPrefix:"SHELL_"`

	// Loader holds settings of the dynamic configuration loader.
	Loader Loader `envPrefix:"LOADER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Name is used as the "role" field of every log line.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is the semantic version string of the running service
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Shell holds file-system locations of everything the bootstrap pipeline
// reads from the SPA build output.
type Shell struct {
	// IndexPath is the path to the SPA document (index.html) that contains
	// the mount point.
	// Env: SHELL_INDEX_PATH
	IndexPath string `env:"INDEX_PATH"`

	// StaticDir is the directory holding the SPA build assets. It is served
	// under /static/ and backs the SPA fallback for existing files.
	// Env: SHELL_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`

	// BaseConfigPath is the path to the statically embedded viewer
	// configuration (app-config.json or app-config.js). Empty means the
	// viewer starts without a base configuration.
	// Env: SHELL_BASE_CONFIG_PATH
	BaseConfigPath string `env:"BASE_CONFIG_PATH"`

	// PluginManifestPath is the path to the JSON manifest listing the
	// bundled extensions and modes. Empty means no plugins.
	// Env: SHELL_PLUGIN_MANIFEST_PATH
	PluginManifestPath string `env:"PLUGIN_MANIFEST_PATH"`
}

// Loader holds settings of the dynamic configuration loader.
type Loader struct {
	// Enabled turns the dynamic loader on. When false every page session
	// keeps the base configuration.
	// Env: LOADER_ENABLED
	Enabled bool `env:"ENABLED"`

	// PublicBaseURL is the absolute URL relative configUrl values are
	// resolved against. Request headers are never used for resolution.
	// Env: LOADER_PUBLIC_BASE_URL
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`

	// AllowedHosts lists the host[:port] values a configUrl may point at.
	// Empty means only the host of PublicBaseURL.
	// Env: LOADER_ALLOWED_HOSTS (comma separated)
	AllowedHosts []string `env:"ALLOWED_HOSTS" envSeparator:","`

	// RequestTimeout bounds a single dynamic configuration fetch.
	// Env: LOADER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the service
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags (args, usually os.Args[1:])
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
