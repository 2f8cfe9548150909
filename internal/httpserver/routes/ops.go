package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/museum/internal/httpserver/deps"
	"github.com/MrSnakeDoc/museum/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/museum/internal/httpserver/mw"
)

func init() { Register(registerOps) }

// Ops endpoints are restricted to the allowed CIDRs and Host headers.
func registerOps(r chi.Router, d deps.Deps) {
	guarded := r.With(
		mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger),
		mw.EnforceHost(d.AllowedHosts, d.Logger),
	)
	guarded.Get("/healthz", handlers.Healthz(d))
	guarded.Get("/readyz", handlers.Readyz(d))
	guarded.Get("/infra", handlers.Infra(d))
	guarded.Post("/reload", handlers.Reload(d))
}
