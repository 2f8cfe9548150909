package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MrSnakeDoc/museum/internal/domain"
	"github.com/MrSnakeDoc/museum/internal/httpserver/deps"
	"github.com/MrSnakeDoc/museum/internal/logger"
	"github.com/MrSnakeDoc/museum/internal/router"
	"github.com/MrSnakeDoc/museum/internal/viewer"
)

type searchResponse struct {
	Query    string          `json:"query"`
	Results  []domain.Result `json:"results"`
	Selected int             `json:"selected"`
	Open     bool            `json:"open"`
}

// Search runs the live query against the flattened index and stores the
// ranked results as the current selection list of the search surface.
func Search(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))

		results := d.Search.HandleQuery(query)

		d.Logger.Debug("search request",
			logger.String("query", query),
			logger.Int("results", len(results)))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(searchResponse{
			Query:    query,
			Results:  results,
			Selected: d.Search.Selected(),
			Open:     d.Search.IsOpen(),
		})
	}
}

type sessionRequest struct {
	Op string `json:"op"`
}

type sessionResponse struct {
	Open       bool               `json:"open"`
	Selected   int                `json:"selected"`
	Results    []domain.Result    `json:"results"`
	Navigation *router.Navigation `json:"navigation,omitempty"`
	View       *viewer.View       `json:"view,omitempty"`
}

// SearchSession drives the keyboard state machine of the search surface:
// open, down, up, enter and escape. While the surface is open these are the
// only keyboard operations the frontend dispatches to the server.
func SearchSession(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}

		resp := sessionResponse{}

		switch req.Op {
		case "open":
			d.Search.Open()
		case "down":
			d.Search.MoveDown()
		case "up":
			d.Search.MoveUp()
		case "escape":
			d.Search.Close()
		case "enter":
			handleActivation(r, d, &resp)
		default:
			http.Error(w, "unknown op", http.StatusBadRequest)
			return
		}

		resp.Open = d.Search.IsOpen()
		resp.Selected = d.Search.Selected()
		resp.Results = d.Search.Results()

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// handleActivation resolves the selected result: close the surface, navigate
// to the entry's collection route and open its lightbox.
func handleActivation(r *http.Request, d deps.Deps, resp *sessionResponse) {
	act, ok := d.Search.Activate()
	if !ok {
		return
	}

	nav := d.Router.NavigateTo(act.Route, true, router.ActivatedNone)
	resp.Navigation = &nav

	view, ok := d.Viewer.Open(act.Type, act.ID)
	if !ok {
		d.Logger.Warn("activated entry vanished from registry",
			logger.String("type", string(act.Type)),
			logger.String("id", act.ID))
		return
	}
	resp.View = view

	// Mirror the counter in redis (best effort).
	if _, err := d.Store.IncrementViews(r.Context(), act.Type, act.ID); err != nil {
		d.Logger.Debug("view counter sync failed", logger.Error(err))
	}

	d.Logger.Info("search activation",
		logger.String("type", string(act.Type)),
		logger.String("id", act.ID),
		logger.String("route", act.Route))
}
