package routes

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/museum/internal/httpserver/deps"
)

func init() { Register(registerAssets) }

// registerAssets serves the static frontend when an assets directory is
// configured. Unknown paths fall through to index.html so hash routes keep
// working on hard refresh.
func registerAssets(r chi.Router, d deps.Deps) {
	if d.AssetsDir == "" {
		return
	}

	fs := http.FileServer(http.Dir(d.AssetsDir))
	r.Get("/*", func(w http.ResponseWriter, req *http.Request) {
		if strings.HasPrefix(req.URL.Path, "/api/") {
			http.NotFound(w, req)
			return
		}
		fs.ServeHTTP(w, req)
	})
}
