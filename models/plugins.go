// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Extension describes a viewer extension registered at build time.
type Extension struct {
	// ID is the package identifier of the extension
	// (e.g. "@ohif/extension-default").
	ID string `json:"id"`

	// Version is the installed version, if known.
	Version string `json:"version,omitempty"`
}

// Mode describes a viewer mode registered at build time.
type Mode struct {
	// ID is the package identifier of the mode.
	ID string `json:"id"`

	// Version is the installed version, if known.
	Version string `json:"version,omitempty"`

	// DisplayName is the human-readable name of the mode.
	DisplayName string `json:"displayName,omitempty"`
}

// PluginManifest is the document produced by the SPA build that lists all
// extensions and modes bundled into the application.
type PluginManifest struct {
	Extensions []Extension `json:"extensions"`
	Modes      []Mode      `json:"modes"`
}
