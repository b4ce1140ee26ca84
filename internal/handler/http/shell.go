// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"path"
	"path/filepath"

	"github.com/MKhiriev/viewer-shell/internal/logger"
	"github.com/MKhiriev/viewer-shell/internal/utils"
)

// mountShell runs the bootstrap pipeline for the requested page and responds
// with the mounted document. Each request is its own page session.
func (h *Handler) mountShell(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var page bytes.Buffer
	props, err := h.services.Bootstrapper.Run(r.Context(), utils.RequestLocation(r), &page)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.mountShell").Int("status", status).Msg("error mounting viewer shell")
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Debug().
		Int("extensions", len(props.DefaultExtensions)).
		Int("modes", len(props.DefaultModes)).
		Msg("viewer shell mounted")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(page.Bytes()); err != nil {
		log.Err(err).Str("func", "*Handler.mountShell").Msg("error writing mounted document")
	}
}

// serveSPA serves files of the SPA build directly and falls back to the
// mounted shell for every other path. The raw index document is never
// served.
func (h *Handler) serveSPA(w http.ResponseWriter, r *http.Request) {
	if h.isAsset(r.URL.Path) {
		http.FileServer(h.assets).ServeHTTP(w, r)
		return
	}

	h.mountShell(w, r)
}

// serveAsset serves a regular file of the SPA build and responds 404 to
// anything else, directories included.
func (h *Handler) serveAsset(w http.ResponseWriter, r *http.Request) {
	if !h.isAsset(r.URL.Path) {
		http.NotFound(w, r)
		return
	}

	http.FileServer(h.assets).ServeHTTP(w, r)
}

func (h *Handler) isAsset(urlPath string) bool {
	if h.assets == nil {
		return false
	}

	name := path.Clean("/" + urlPath)
	if h.indexPath != "" && path.Base(name) == filepath.Base(h.indexPath) {
		return false
	}

	f, err := h.assets.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false
	}

	return !info.IsDir()
}
