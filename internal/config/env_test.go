// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_NAME":    "viewer",
		"APP_VERSION": "3.9.0",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"SHELL_INDEX_PATH":           "/srv/index.html",
		"SHELL_STATIC_DIR":           "/srv",
		"SHELL_BASE_CONFIG_PATH":     "/srv/app-config.js",
		"SHELL_PLUGIN_MANIFEST_PATH": "/srv/plugins.json",

		"LOADER_ENABLED":         "true",
		"LOADER_PUBLIC_BASE_URL": "https://viewer.example.com/",
		"LOADER_ALLOWED_HOSTS":   "configs.example.com,viewer.example.com",
		"LOADER_REQUEST_TIMEOUT": "5s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "viewer", cfg.App.Name)
	assert.Equal(t, "3.9.0", cfg.App.Version)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/srv/index.html", cfg.Shell.IndexPath)
	assert.Equal(t, "/srv", cfg.Shell.StaticDir)
	assert.Equal(t, "/srv/app-config.js", cfg.Shell.BaseConfigPath)
	assert.Equal(t, "/srv/plugins.json", cfg.Shell.PluginManifestPath)
	assert.True(t, cfg.Loader.Enabled)
	assert.Equal(t, "https://viewer.example.com/", cfg.Loader.PublicBaseURL)
	assert.Equal(t, []string{"configs.example.com", "viewer.example.com"}, cfg.Loader.AllowedHosts)
	assert.Equal(t, 5*time.Second, cfg.Loader.RequestTimeout)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SERVER_ADDRESS": "localhost:8080",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)
	assert.Empty(t, cfg.Shell.BaseConfigPath)
	assert.False(t, cfg.Loader.Enabled)
}

func TestParseEnv_InvalidBool(t *testing.T) {
	t.Setenv("LOADER_ENABLED", "maybe")

	err := parseEnv(&StructuredConfig{})
	assert.ErrorIs(t, err, ErrInvalidEnvConfigs)
}
