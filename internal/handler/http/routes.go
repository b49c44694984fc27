package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Post("/api/sync", h.triggerSync)
	router.Get("/api/queue/next", h.peekNextRequest)
	router.Get("/api/status", h.getStatus)

	router.Route("/api/objects/{id}", func(r chi.Router) {
		r.Get("/", h.getObject)
		r.Put("/", h.putObject)
		r.Delete("/", h.removeObject)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
