package store

import "errors"

// Sentinel errors returned by storages. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrReadingBaseConfig is returned when the base configuration file
	// cannot be read.
	ErrReadingBaseConfig = errors.New("error reading base config")

	// ErrDecodingBaseConfig is returned when the base configuration file is
	// not valid JSON, or when an app-config.js file does not contain a JSON
	// object literal assigned to window.config.
	ErrDecodingBaseConfig = errors.New("error decoding base config")

	// ErrCopyingConfig is returned when a deep copy of the base
	// configuration cannot be produced.
	ErrCopyingConfig = errors.New("error copying config")

	// ErrReadingPluginManifest is returned when the plugin manifest cannot be
	// read or decoded.
	ErrReadingPluginManifest = errors.New("error reading plugin manifest")
)
