package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing HTTP address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidShellConfigs indicates invalid shell settings
	// (for example, missing index document path).
	ErrInvalidShellConfigs = errors.New("invalid shell configuration")
	// ErrInvalidLoaderConfigs indicates invalid dynamic loader settings
	// (for example, a negative request timeout).
	ErrInvalidLoaderConfigs = errors.New("invalid loader configuration")
)

// ErrInvalidEnvConfigs is returned when an environment variable cannot be
// converted to the type of its configuration field.
var ErrInvalidEnvConfigs = errors.New("invalid environment configuration")
