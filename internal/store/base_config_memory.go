// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/viewer-shell/models"
)

type memoryBaseConfigStorage struct {
	config models.Config
}

// NewMemoryBaseConfigStorage returns a [BaseConfigStorage] that serves copies
// of cfg. cfg may be nil, meaning no base configuration.
func NewMemoryBaseConfigStorage(cfg models.Config) BaseConfigStorage {
	return &memoryBaseConfigStorage{config: cfg}
}

func (m *memoryBaseConfigStorage) BaseConfig(ctx context.Context) (models.Config, error) {
	return copyConfig(m.config)
}
