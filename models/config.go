// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Keys of the configuration object that the URL override is allowed to patch.
const (
	DefaultDataSourceNameKey = "defaultDataSourceName"
	DataSourcesKey           = "dataSources"
)

// Config is the viewer's runtime configuration: an open-ended JSON object
// whose schema is owned by the single-page application. A nil Config means
// the configuration is absent.
type Config map[string]any

// IsEmpty reports whether cfg is absent or has no keys.
func (cfg Config) IsEmpty() bool {
	return len(cfg) == 0
}

// DefaultDataSourceName returns the value stored under
// [DefaultDataSourceNameKey] when it is a string.
func (cfg Config) DefaultDataSourceName() (string, bool) {
	name, ok := cfg[DefaultDataSourceNameKey].(string)
	return name, ok
}

// DataSources returns the ordered data-source descriptors stored under
// [DataSourcesKey]. Descriptors are opaque and returned as decoded JSON.
func (cfg Config) DataSources() ([]any, bool) {
	sources, ok := cfg[DataSourcesKey].([]any)
	return sources, ok
}
