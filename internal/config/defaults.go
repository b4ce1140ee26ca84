// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied before any other configuration source.
const (
	DefaultAppName              = "viewer-shell"
	DefaultHTTPAddress          = "0.0.0.0:3000"
	DefaultRequestTimeout       = 30 * time.Second
	DefaultLoaderRequestTimeout = 15 * time.Second
	DefaultIndexPath            = "dist/index.html"
	DefaultStaticDir            = "dist"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name: DefaultAppName,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Shell: Shell{
			IndexPath: DefaultIndexPath,
			StaticDir: DefaultStaticDir,
		},
		Loader: Loader{
			RequestTimeout: DefaultLoaderRequestTimeout,
		},
	}
}
