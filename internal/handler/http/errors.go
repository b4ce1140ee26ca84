// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/viewer-shell/internal/adapter"
	"github.com/MKhiriev/viewer-shell/internal/service"
	"github.com/MKhiriev/viewer-shell/internal/shell"
	"github.com/MKhiriev/viewer-shell/internal/store"
)

// errorStatusMap maps sentinel errors of the lower layers to the status the
// HTTP layer responds with. Errors not listed here map to 500.
var errorStatusMap = map[error]int{
	service.ErrInvalidOverrideBody: http.StatusBadRequest,
	service.ErrAlreadyMounted:      http.StatusInternalServerError,
	service.ErrStageOutOfOrder:     http.StatusInternalServerError,

	adapter.ErrDynamicConfigFetch:  http.StatusBadGateway,
	adapter.ErrDynamicConfigDecode: http.StatusBadGateway,

	shell.ErrMountPointNotFound: http.StatusInternalServerError,
	shell.ErrReadingDocument:    http.StatusInternalServerError,
	shell.ErrParsingDocument:    http.StatusInternalServerError,
	shell.ErrEncodingProps:      http.StatusInternalServerError,
	shell.ErrRenderingDocument:  http.StatusInternalServerError,

	store.ErrReadingBaseConfig:     http.StatusInternalServerError,
	store.ErrDecodingBaseConfig:    http.StatusInternalServerError,
	store.ErrReadingPluginManifest: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
