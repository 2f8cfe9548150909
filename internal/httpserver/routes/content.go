package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/museum/internal/httpserver/deps"
	"github.com/MrSnakeDoc/museum/internal/httpserver/handlers"
)

func init() { Register(registerContent) }

func registerContent(r chi.Router, d deps.Deps) {
	r.Get("/api/sitemap", handlers.Sitemap(d))
	r.Get("/api/theme", handlers.GetTheme(d))
	r.Put("/api/theme", handlers.SetTheme(d))
	r.Get("/api/lightbox/{type}/{id}", handlers.Lightbox(d))
	r.Get("/api/lightbox/{type}", handlers.LightboxGrid(d))
	r.Get("/api/featured", handlers.Featured(d))
}
