// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// service invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// sentinel validation errors otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	if cfg.Shell.IndexPath == "" {
		return fmt.Errorf("%w: empty index document path", ErrInvalidShellConfigs)
	}

	if cfg.Loader.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidLoaderConfigs)
	}
	if cfg.Loader.PublicBaseURL != "" {
		u, err := url.Parse(cfg.Loader.PublicBaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: public base url must be an absolute http(s) url", ErrInvalidLoaderConfigs)
		}
	}
	if cfg.Loader.Enabled && cfg.Loader.PublicBaseURL == "" && len(cfg.Loader.AllowedHosts) == 0 {
		return fmt.Errorf("%w: enabled loader needs a public base url or allowed hosts", ErrInvalidLoaderConfigs)
	}

	return nil
}
