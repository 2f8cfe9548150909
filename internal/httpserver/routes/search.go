package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/museum/internal/httpserver/deps"
	"github.com/MrSnakeDoc/museum/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/museum/internal/httpserver/mw"
)

func init() { Register(registerSearch) }

func registerSearch(r chi.Router, d deps.Deps) {
	limited := r.With(mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.SearchBurst,
		RefillPerIPPerMin: d.SearchRefillPerMin,
		TrustProxy:        d.TrustProxy,
	}))
	limited.Get("/api/search", handlers.Search(d))
	limited.Post("/api/search/session", handlers.SearchSession(d))
}
