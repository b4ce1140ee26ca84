// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/viewer-shell/models"
)

// windowConfigAssignment is the statement an app-config.js file uses to
// publish the base configuration.
const windowConfigAssignment = "window.config"

type fileBaseConfigStorage struct {
	path   string
	config models.Config
}

// NewFileBaseConfigStorage reads the base configuration from path once and
// returns a [BaseConfigStorage] serving copies of it.
//
// Files ending in ".js" must contain a JSON object literal assigned to
// window.config ("window.config = {...};"). Any other file is decoded as a
// JSON document. A JSON null document yields an absent configuration.
func NewFileBaseConfigStorage(path string) (BaseConfigStorage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingBaseConfig, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".js") {
		data, err = extractWindowConfig(data)
		if err != nil {
			return nil, err
		}
	}

	var cfg models.Config
	if err = json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecodingBaseConfig, path, err)
	}

	return &fileBaseConfigStorage{path: path, config: cfg}, nil
}

func (f *fileBaseConfigStorage) BaseConfig(ctx context.Context) (models.Config, error) {
	return copyConfig(f.config)
}

func extractWindowConfig(script []byte) ([]byte, error) {
	idx := bytes.Index(script, []byte(windowConfigAssignment))
	if idx < 0 {
		return nil, fmt.Errorf("%w: no %s assignment found", ErrDecodingBaseConfig, windowConfigAssignment)
	}

	rest := script[idx+len(windowConfigAssignment):]
	start := bytes.IndexByte(rest, '{')
	end := bytes.LastIndexByte(rest, '}')
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: %s is not assigned an object literal", ErrDecodingBaseConfig, windowConfigAssignment)
	}

	return rest[start : end+1], nil
}
