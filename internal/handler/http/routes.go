package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes behind JWT authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Put("/api/users/me/rich_info", h.setRichInfo)
		r.Get("/api/users/{userID}/rich_info", h.getRichInfo)

		r.Post("/api/teams", h.createTeam)
		r.Post("/api/teams/{teamID}/members", h.addTeamMember)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
