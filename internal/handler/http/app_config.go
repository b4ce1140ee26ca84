package http

import (
	"net/http"

	"github.com/MKhiriev/viewer-shell/internal/logger"
	"github.com/MKhiriev/viewer-shell/internal/utils"
)

// getAppConfig responds with the configuration a page session at the
// request's location would be mounted with, without mounting it.
func (h *Handler) getAppConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	cfg, err := h.services.Bootstrapper.Resolve(r.Context(), utils.RequestLocation(r))
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.getAppConfig").Int("status", status).Msg("error resolving app config")
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	if _, err = utils.WriteJSON(w, cfg, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getAppConfig").Msg("error writing app config")
	}
}
