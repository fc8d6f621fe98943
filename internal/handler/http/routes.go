package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init assembles the router.
//
// The outer middleware chain applies to every route: panic recovery, trace
// IDs, request logging, security headers, and the per-request deadline.
// Login throttling applies to the login route only; the bearer-token check
// guards the authenticated group.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withSecurityHeaders)
	router.Use(middleware.Timeout(h.cfg.RequestTimeout))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Post("/api/auth/register", h.register)
		r.With(h.withLoginRateLimit).Post("/api/auth/login", h.login)
		r.Post("/api/generate-password", h.generatePassword)
	})

	// routes behind bearer-token authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/me", h.me)

		r.Route("/api/passwords", func(r chi.Router) {
			r.Get("/", h.listEntries)
			r.Post("/", h.createEntry)
			r.Put("/{id}", h.updateEntry)
			r.Delete("/{id}", h.deleteEntry)
		})
	})

	return router
}
