package adapter

import (
	"context"
	"net/url"

	"github.com/MKhiriev/viewer-shell/models"
)

type nopConfigLoader struct{}

// NewNopConfigLoader returns a [ConfigLoader] that never replaces the base
// configuration.
func NewNopConfigLoader() ConfigLoader {
	return nopConfigLoader{}
}

func (nopConfigLoader) Load(context.Context, models.Config, *url.URL) (models.LoadResult, error) {
	return models.NoReplacement(), nil
}
