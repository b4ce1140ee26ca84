package store

import (
	"fmt"

	"github.com/MKhiriev/viewer-shell/models"
	"github.com/mitchellh/copystructure"
)

func copyConfig(cfg models.Config) (models.Config, error) {
	if cfg == nil {
		return nil, nil
	}

	copied, err := copystructure.Copy(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCopyingConfig, err)
	}

	return copied.(models.Config), nil
}
