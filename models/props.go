// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StartupProps is the record handed to the UI shell when it is mounted.
// It is built once per page session and never stored afterwards.
type StartupProps struct {
	// Config is the final, resolved configuration.
	Config Config `json:"config"`

	// DefaultExtensions lists the extensions bundled with the application.
	DefaultExtensions []Extension `json:"defaultExtensions"`

	// DefaultModes lists the modes bundled with the application.
	DefaultModes []Mode `json:"defaultModes"`
}

// NewStartupProps builds a [StartupProps] value. Nil plugin lists are
// replaced with empty ones so that they serialize as JSON arrays.
func NewStartupProps(cfg Config, extensions []Extension, modes []Mode) StartupProps {
	if extensions == nil {
		extensions = []Extension{}
	}
	if modes == nil {
		modes = []Mode{}
	}

	return StartupProps{
		Config:            cfg,
		DefaultExtensions: extensions,
		DefaultModes:      modes,
	}
}
