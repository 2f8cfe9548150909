package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/museum/internal/httpserver/deps"
	"github.com/MrSnakeDoc/museum/internal/httpserver/handlers"
)

func init() { Register(registerNavigation) }

func registerNavigation(r chi.Router, d deps.Deps) {
	r.Get("/api/resolve", handlers.Resolve(d))
	r.Post("/api/back", handlers.Back(d))
}
