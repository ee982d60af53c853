package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter は HTTP ルーティングを組み立てます。
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.Healthz)

	r.Route("/api", func(r chi.Router) {
		r.Get("/vocabulary", h.Vocabulary)
		r.Post("/generate", h.Generate)
		r.Post("/hymns", h.SuggestHymn)
		r.Post("/questions", h.FollowUpQuestions)
	})

	return r
}
