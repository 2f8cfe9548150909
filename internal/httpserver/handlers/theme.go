package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/MrSnakeDoc/museum/internal/httpserver/deps"
	"github.com/MrSnakeDoc/museum/internal/logger"
	redisstore "github.com/MrSnakeDoc/museum/internal/store/redis"
)

type themeBody struct {
	Theme string `json:"theme"`
}

// GetTheme returns the persisted theme preference. Redis trouble degrades to
// the default theme instead of failing the request.
func GetTheme(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		theme, err := d.Store.GetTheme(r.Context())
		if err != nil {
			d.Logger.Warn("theme lookup failed, serving default", logger.Error(err))
			theme = redisstore.DefaultTheme
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(themeBody{Theme: theme})
	}
}

// SetTheme persists the theme preference.
func SetTheme(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body themeBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}

		if !redisstore.ValidTheme(body.Theme) {
			http.Error(w, "theme must be light or dark", http.StatusBadRequest)
			return
		}

		if err := d.Store.SetTheme(r.Context(), body.Theme); err != nil {
			d.Logger.Error("theme persist failed", logger.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(themeBody{Theme: body.Theme})
	}
}
