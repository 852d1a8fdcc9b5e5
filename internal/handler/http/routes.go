package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/auth/login", h.login)
			r.Get("/version", h.getServerVersion)
		})

		r.Group(func(r chi.Router) {
			if h.requireAuth {
				r.Use(h.auth)
			}

			for collection, mutator := range h.services.Resources() {
				r.Route("/"+collection, func(r chi.Router) {
					r.Get("/", h.listRecords(mutator))
					r.Post("/", h.createRecord(mutator))
					r.Get("/{id}", h.getRecord(mutator))
					r.Put("/{id}", h.updateRecord(mutator))
					r.Delete("/{id}", h.deleteRecord(mutator))
				})
			}
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
