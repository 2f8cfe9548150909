package router

import (
	"sync"

	"github.com/MrSnakeDoc/museum/internal/logger"
)

// Router is the navigation engine. It owns the current/previous route, the
// append-only history log and a monotonically increasing generation counter
// used to discard stale in-flight renders after rapid navigation.
//
// All mutation happens through NavigateTo/GoBack under the mutex; the route
// table itself is immutable.
type Router struct {
	mu         sync.Mutex
	table      *Table
	logger     logger.Logger
	current    string
	previous   string
	lastPanel  ActivatedPanel
	history    []string
	generation uint64
}

// Navigation is the full outcome of one navigation call: the tagged
// resolution, the computed view transition, and the browser-history fragment
// when the navigation should be recorded.
type Navigation struct {
	Route      string         `json:"route"`
	Title      string         `json:"title,omitempty"`
	Resolution Resolution     `json:"resolution"`
	ViewClass  ViewClass      `json:"view_class"`
	Transition TransitionPlan `json:"transition"`
	Generation uint64         `json:"generation"`
	Fragment   string         `json:"fragment,omitempty"` // "#<route>" when recorded
}

func New(table *Table, log logger.Logger) *Router {
	return &Router{
		table:     table,
		logger:    log,
		lastPanel: ActivatedNone,
	}
}

// NavigateTo moves the visitor to route. The route need not pre-exist in the
// static table; unknown routes still become current and resolve to the
// terminal not-found render. recordHistory controls whether the navigation
// produces a browser-history fragment.
func (r *Router) NavigateTo(route string, recordHistory bool, panel ActivatedPanel) Navigation {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.previous = r.current
	r.current = route
	r.lastPanel = panel
	r.history = append(r.history, route)
	r.generation++

	resolution := r.table.Resolve(route)
	class := viewClassFor(r.table, r.current, r.previous, r.lastPanel)

	nav := Navigation{
		Route:      route,
		Resolution: resolution,
		ViewClass:  class,
		Transition: planFor(class),
		Generation: r.generation,
	}

	// The page title only updates from a matched static room.
	if resolution.Kind == ResolutionStatic {
		nav.Title = resolution.Room.Title
	}
	if recordHistory {
		nav.Fragment = "#" + route
	}

	r.logger.Debug("navigated",
		logger.String("route", route),
		logger.String("previous", r.previous),
		logger.String("kind", string(resolution.Kind)),
		logger.String("view_class", string(class)),
		logger.Uint64("generation", r.generation))

	return nav
}

// GoBack navigates to the statically-declared parent of the current route.
// The entrance has no parent; GoBack there is a no-op and reports false.
func (r *Router) GoBack() (Navigation, bool) {
	r.mu.Lock()
	current := r.current
	r.mu.Unlock()

	parent, ok := r.table.Parent(current)
	if !ok {
		return Navigation{}, false
	}
	return r.NavigateTo(parent, true, ActivatedNone), true
}

// Current returns the current route and generation.
func (r *Router) Current() (string, uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current, r.generation
}

// IsCurrent reports whether gen is still the live navigation. Async panel
// loads check this before applying their result; a stale generation means a
// newer navigation won the race and the result must be dropped.
func (r *Router) IsCurrent(gen uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return gen == r.generation
}

// History returns a copy of the append-only navigation log. It exists for
// diagnostics only; back-navigation uses the static parent map.
func (r *Router) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.history))
	copy(out, r.history)
	return out
}

// Table exposes the immutable route table.
func (r *Router) Table() *Table {
	return r.table
}
