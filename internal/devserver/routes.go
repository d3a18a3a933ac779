package devserver

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the devserver router. Every route gets a trace id and request
// logging; panics are recovered.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Post("/api/auth/register", h.register)
	router.Post("/api/auth/login", h.login)
	router.Post("/predict", h.predict)

	return router
}
