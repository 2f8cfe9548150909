package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/MrSnakeDoc/museum/internal/httpserver/deps"
	"github.com/MrSnakeDoc/museum/internal/sitemap"
)

type sitemapResponse struct {
	Sitemap []sitemap.Node `json:"sitemap"`
}

// Sitemap returns the validated navigation tree. 404 when no sitemap file
// was configured.
func Sitemap(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.Sitemap == nil {
			http.Error(w, "sitemap not configured", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(sitemapResponse{Sitemap: d.Sitemap})
	}
}
