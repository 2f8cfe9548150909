package search

import (
	"sync"

	"github.com/MrSnakeDoc/museum/internal/domain"
	"github.com/MrSnakeDoc/museum/internal/logger"
)

// Activation is the outcome of confirming the selected result: the room to
// navigate to and the entry to open in the lightbox once navigation settles.
type Activation struct {
	Route string             `json:"route"`
	Type  domain.ContentType `json:"type"`
	ID    string             `json:"id"`
}

// Engine executes queries against the index and owns the selection state for
// keyboard-driven result navigation. While the search surface is open, all
// other keyboard shortcuts are suppressed; the HTTP layer checks IsOpen
// before dispatching anything else.
type Engine struct {
	mu       sync.Mutex
	index    *Index
	logger   logger.Logger
	open     bool
	results  []domain.Result
	selected int
}

// NewEngine creates a search engine over the index.
func NewEngine(index *Index, log logger.Logger) *Engine {
	return &Engine{
		index:  index,
		logger: log,
	}
}

// Search executes a query and returns a fresh result slice, sorted by
// descending score with ties in index order. It does not touch selection
// state. Empty or whitespace-only queries return nothing.
func (e *Engine) Search(query string) []domain.Result {
	return domain.Rank(query, e.index.Entries())
}

// HandleQuery runs the query and resets selection: first result selected
// when there are results, cleared otherwise.
func (e *Engine) HandleQuery(query string) []domain.Result {
	results := e.Search(query)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.results = results
	e.selected = 0

	e.logger.Debug("search query",
		logger.String("query", query),
		logger.Int("results", len(results)))

	return results
}

// Open marks the search surface as open.
func (e *Engine) Open() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.open = true
}

// Close closes the search surface and clears results and selection.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.open = false
	e.results = nil
	e.selected = 0
}

// IsOpen reports whether the search surface is open.
func (e *Engine) IsOpen() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.open
}

// MoveDown advances the selection, clamped to the last result.
func (e *Engine) MoveDown() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.selected < len(e.results)-1 {
		e.selected++
	}
	return e.selected
}

// MoveUp retreats the selection, clamped to the first result.
func (e *Engine) MoveUp() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.selected > 0 {
		e.selected--
	}
	return e.selected
}

// Selected returns the current selection index.
func (e *Engine) Selected() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selected
}

// Results returns the current result set.
func (e *Engine) Results() []domain.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]domain.Result, len(e.results))
	copy(out, e.results)
	return out
}

// Activate confirms the selected result and closes the search surface.
// Reports false when there is nothing selected.
func (e *Engine) Activate() (Activation, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.results) == 0 || e.selected >= len(e.results) {
		return Activation{}, false
	}

	hit := e.results[e.selected]
	e.open = false
	e.results = nil
	e.selected = 0

	return Activation{
		Route: hit.Route,
		Type:  hit.Type,
		ID:    hit.ID,
	}, true
}
