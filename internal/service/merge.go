// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"maps"
	"math"

	"github.com/MKhiriev/viewer-shell/models"
)

// overrideAllowList is the complete set of keys a URL override may patch.
var overrideAllowList = []string{
	models.DefaultDataSourceNameKey,
	models.DataSourcesKey,
}

// MergeOverride patches base with the allow-listed fields of override and
// returns the result. base itself is not modified.
//
// When override is nil, or base is absent or empty, base is returned as is:
// an override patches an existing configuration and never becomes one.
// Otherwise each allow-listed key is copied independently when present in
// override with a truthy value (not null, false, "" or 0). Every other key
// of override is ignored.
func MergeOverride(base, override models.Config) models.Config {
	if override == nil || base.IsEmpty() {
		return base
	}

	merged := maps.Clone(base)
	for _, key := range overrideAllowList {
		if v, ok := override[key]; ok && truthy(v) {
			merged[key] = v
		}
	}

	return merged
}

// AllowedOverride returns a copy of override holding only the keys
// [MergeOverride] would apply.
func AllowedOverride(override models.Config) models.Config {
	allowed := make(models.Config, len(overrideAllowList))
	for _, key := range overrideAllowList {
		if v, ok := override[key]; ok && truthy(v) {
			allowed[key] = v
		}
	}
	return allowed
}

// truthy follows JavaScript truthiness for decoded JSON values.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0 && !math.IsNaN(t)
	default:
		return true
	}
}
