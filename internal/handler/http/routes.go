package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/version/", h.getServerVersion)
	router.Post("/api/config/override", h.encodeOverride)
	router.Get("/app-config.json", h.getAppConfig)

	if h.assets != nil {
		router.Get("/static/*", http.StripPrefix("/static", http.HandlerFunc(h.serveAsset)).ServeHTTP)
	}

	// every other path is a client-side route of the SPA
	router.Get("/", h.mountShell)
	router.Get("/*", h.serveSPA)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
