package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MrSnakeDoc/museum/internal/content"
	"github.com/MrSnakeDoc/museum/internal/httpserver/deps"
	"github.com/MrSnakeDoc/museum/internal/logger"
)

// Featured returns the light/dark image pair for a named feature wall.
// Lookups go through the redis cache; a missing or unreadable descriptor
// falls back to the placeholder pair instead of failing.
func Featured(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		feature := strings.TrimSpace(r.URL.Query().Get("feature"))
		if feature == "" {
			http.Error(w, "missing feature parameter", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		ctx := r.Context()

		if img, ok, err := d.Store.GetCachedFeatured(ctx, feature); err == nil && ok {
			_ = json.NewEncoder(w).Encode(img)
			return
		}

		img, err := d.Featured.Load(feature)
		if err != nil {
			d.Logger.Warn("featured image unavailable, serving placeholder",
				logger.String("feature", feature),
				logger.Error(err))
			_ = json.NewEncoder(w).Encode(content.PlaceholderFeatured)
			return
		}

		if err := d.Store.CacheFeatured(ctx, feature, img, d.FeaturedTTL); err != nil {
			d.Logger.Debug("featured cache write failed", logger.Error(err))
		}

		_ = json.NewEncoder(w).Encode(img)
	}
}
