package http

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/MKhiriev/viewer-shell/internal/logger"
	"github.com/MKhiriev/viewer-shell/internal/service"
	"github.com/MKhiriev/viewer-shell/internal/utils"
	"github.com/MKhiriev/viewer-shell/models"
)

const maxOverrideBodySize = 1 << 20

// encodeOverride turns a partial configuration into the config query
// parameter that overrides it on page load.
func (h *Handler) encodeOverride(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var override models.Config
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxOverrideBodySize)).Decode(&override); err != nil {
		log.Err(err).Str("func", "*Handler.encodeOverride").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	encoded, err := h.services.OverrideService.EncodeOverride(r.Context(), override)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.encodeOverride").Int("status", status).Msg("error encoding config override")
		http.Error(w, err.Error(), status)
		return
	}

	response := models.OverrideQueryResponse{
		Query: url.Values{service.ConfigQueryParam: {encoded}}.Encode(),
		Value: encoded,
	}
	if _, err = utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.encodeOverride").Msg("error writing override response")
	}
}
