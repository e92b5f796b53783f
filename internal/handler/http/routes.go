package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/healthz", h.healthz)
	router.Get("/api/version/", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.respond(h.registerUser))
		r.Post("/api/auth/login", h.respond(h.loginUser))
		r.Post("/api/auth/logout", h.respond(h.logoutUser))
	})

	// routes that require a session
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/auth/me", h.me)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
