// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoadResult is the outcome of a dynamic configuration load: either a full
// replacement configuration or the "no replacement" sentinel.
type LoadResult struct {
	config   Config
	replaced bool
}

// NoReplacement returns the sentinel result that leaves the current
// configuration untouched.
func NoReplacement() LoadResult {
	return LoadResult{}
}

// Replacement returns a result that replaces the current configuration with
// cfg wholesale.
func Replacement(cfg Config) LoadResult {
	return LoadResult{config: cfg, replaced: true}
}

// Config returns the replacement configuration and true, or nil and false
// for the sentinel.
func (r LoadResult) Config() (Config, bool) {
	return r.config, r.replaced
}
