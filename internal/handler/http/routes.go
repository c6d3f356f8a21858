package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Harry2k21/house-finder-v1/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/ask_expert", h.askExpert)
	})

	// routes requiring a bearer session token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/verify_token", h.verifyToken)
		r.Get("/scrape", h.scrape)
		r.Get("/history", h.history)
		r.Get("/requirements", h.getPreferences(models.KindRequirements))
		r.Post("/requirements", h.savePreferences(models.KindRequirements))
		r.Get("/shortlist", h.getPreferences(models.KindShortlist))
		r.Post("/shortlist", h.savePreferences(models.KindShortlist))
		r.Post("/geocode", h.geocode)
	})

	return router
}
