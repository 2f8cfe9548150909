package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/museum/internal/domain"
	"github.com/MrSnakeDoc/museum/internal/httpserver/deps"
	"github.com/MrSnakeDoc/museum/internal/logger"
)

// Lightbox opens a single entry: the entry itself, its siblings for
// prev/next paging and the updated view counter.
func Lightbox(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ct := domain.ContentType(chi.URLParam(r, "type"))
		id := chi.URLParam(r, "id")

		if !ct.Valid() {
			http.Error(w, "unknown content type", http.StatusBadRequest)
			return
		}

		view, ok := d.Viewer.Open(ct, id)
		if !ok {
			http.Error(w, "entry not found", http.StatusNotFound)
			return
		}

		// Mirror the counter in redis (best effort).
		if _, err := d.Store.IncrementViews(r.Context(), ct, id); err != nil {
			d.Logger.Debug("view counter sync failed", logger.Error(err))
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(view)
	}
}

// LightboxGrid opens a whole collection at once. An empty collection is a
// valid grid, not an error.
func LightboxGrid(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ct := domain.ContentType(chi.URLParam(r, "type"))

		if !ct.Valid() {
			http.Error(w, "unknown content type", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(d.Viewer.OpenGrid(ct))
	}
}
