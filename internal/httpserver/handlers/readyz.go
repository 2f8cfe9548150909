package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/MrSnakeDoc/museum/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready   bool `json:"ready"`
	Entries int  `json:"entries"`
	Indexed bool `json:"indexed"`
}

// Readyz reports ready once the first content load populated the registry
// and the search index was built.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := d.Registry.Count()
		indexed := d.Index.Indexed()
		ready := entries > 0 && indexed

		w.Header().Set("Content-Type", "application/json")
		if !ready {
			w.WriteHeader(http.StatusServiceUnavailable)
		}

		_ = json.NewEncoder(w).Encode(readyzResponse{
			Ready:   ready,
			Entries: entries,
			Indexed: indexed,
		})
	}
}
