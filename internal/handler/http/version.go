package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/viewer-shell/internal/logger"
)

// getServerVersion responds with the running service version as plain text.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set("Cache-Control", "no-cache")
	if _, err := io.WriteString(w, serverVersion); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getServerVersion").Msg("error writing version")
	}
}
