package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/viewer-shell/internal/logger"
	"github.com/MKhiriev/viewer-shell/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverrideService_EncodeOverride_KeepsAllowListedKeys(t *testing.T) {
	svc := NewOverrideService(logger.Nop())

	encoded, err := svc.EncodeOverride(context.Background(), models.Config{
		"defaultDataSourceName": "dicomweb",
		"dataSources":           []any{map[string]any{"name": "dicomweb"}},
		"showStudyList":         false,
	})
	require.NoError(t, err)

	decoded, err := DecodeOverride(encoded)
	require.NoError(t, err)
	assert.Equal(t, models.Config{
		"defaultDataSourceName": "dicomweb",
		"dataSources":           []any{map[string]any{"name": "dicomweb"}},
	}, decoded)
}

func TestOverrideService_EncodeOverride_InvalidBody(t *testing.T) {
	svc := NewOverrideService(logger.Nop())

	tests := []struct {
		name     string
		override models.Config
	}{
		{name: "nil", override: nil},
		{name: "nothing applicable", override: models.Config{"showStudyList": true}},
		{name: "only falsy values", override: models.Config{"defaultDataSourceName": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.EncodeOverride(context.Background(), tt.override)
			assert.ErrorIs(t, err, ErrInvalidOverrideBody)
		})
	}
}
