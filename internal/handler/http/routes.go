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

	// routes without authorization: account creation plus the public
	// respondent surface of a shared form
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)

		r.Get("/api/preview/{formId}", h.preview)
		r.Post("/api/prospects/{formId}", h.submitProspect)
	})

	// owner-only routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/form", h.createForm)
		r.Get("/api/forms", h.listForms)
		r.Get("/api/form/{formId}", h.getForm)
		r.Post("/api/form/{formId}", h.saveComponents)
		r.Delete("/api/form/{formId}", h.deleteForm)

		r.Get("/api/prospects/{formId}", h.listProspects)
	})

	return router
}
