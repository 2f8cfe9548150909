package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MrSnakeDoc/museum/internal/domain"
	"github.com/MrSnakeDoc/museum/internal/httpserver/deps"
	"github.com/MrSnakeDoc/museum/internal/router"
)

type resolveResponse struct {
	router.Navigation
	Panels  []router.Panel `json:"panels,omitempty"`
	Entries []domain.Entry `json:"entries,omitempty"`
}

// Resolve navigates to the requested route and returns the full render state:
// resolution, transition plan, generation and the panels (or domain entries)
// the frontend should draw.
func Resolve(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		route := strings.TrimSpace(r.URL.Query().Get("route"))
		record := r.URL.Query().Get("record") != "false"
		panel := activatedPanelFrom(r.URL.Query().Get("panel"))

		nav := d.Router.NavigateTo(route, record, panel)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(buildResolveResponse(d, nav))
	}
}

// Back navigates to the statically-declared parent of the current route.
// At the entrance there is no parent and the call is a no-op.
func Back(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		nav, ok := d.Router.GoBack()
		if !ok {
			_ = json.NewEncoder(w).Encode(struct {
				Moved bool `json:"moved"`
			}{Moved: false})
			return
		}

		_ = json.NewEncoder(w).Encode(struct {
			Moved bool `json:"moved"`
			resolveResponse
		}{Moved: true, resolveResponse: buildResolveResponse(d, nav)})
	}
}

func buildResolveResponse(d deps.Deps, nav router.Navigation) resolveResponse {
	resp := resolveResponse{Navigation: nav}

	switch nav.Resolution.Kind {
	case router.ResolutionStatic:
		resp.Panels = nav.Resolution.Room.Panels()
	case router.ResolutionDynamic:
		resp.Entries = collectionEntries(d, nav.Resolution)
	case router.ResolutionNotFound:
		resp.Panels = router.NotFoundRoom().Panels()
	}

	return resp
}

// collectionEntries returns the entries a dynamic route should render. A
// trailing collection segment narrows the domain to that collection; the
// bare base route renders the whole domain. Collection membership is keyed
// by entry route, which the mapper sets to base + "/" + collection.
func collectionEntries(d deps.Deps, res router.Resolution) []domain.Entry {
	entries := d.Registry.All(res.Domain)
	if res.CollectionID == "" {
		return entries
	}

	filtered := entries[:0]
	for _, e := range entries {
		if e.Route == res.Route {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func activatedPanelFrom(s string) router.ActivatedPanel {
	switch s {
	case "left":
		return router.ActivatedLeft
	case "right":
		return router.ActivatedRight
	case "front":
		return router.ActivatedFront
	case "back":
		return router.ActivatedBack
	default:
		return router.ActivatedNone
	}
}
