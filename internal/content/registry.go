package content

import (
	"sync"
	"time"

	"github.com/MrSnakeDoc/museum/internal/domain"
)

// Registry provides in-memory storage and lookup for the loaded content
// collections. Slices keep their in-file order; the search index and the
// lightbox sibling arrays both depend on it.
type Registry struct {
	mu         sync.RWMutex
	entries    map[domain.ContentType][]domain.Entry
	positions  map[domain.ContentType]map[string]int // id -> slice position
	views      map[string]int64                      // ViewKey -> count
	lastReload time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries:   make(map[domain.ContentType][]domain.Entry),
		positions: make(map[domain.ContentType]map[string]int),
		views:     make(map[string]int64),
	}
}

// Update replaces all collections atomically. View counters survive a
// reload; orphaned counters are pruned separately by the view GC.
func (r *Registry) Update(collections map[domain.ContentType][]domain.Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make(map[domain.ContentType][]domain.Entry, len(collections))
	r.positions = make(map[domain.ContentType]map[string]int, len(collections))
	for ct, entries := range collections {
		r.entries[ct] = entries
		byID := make(map[string]int, len(entries))
		for i, e := range entries {
			byID[e.ID] = i
		}
		r.positions[ct] = byID
	}
	r.lastReload = time.Now()
}

// All returns the collection of a content type in insertion order.
func (r *Registry) All(ct domain.ContentType) []domain.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.entries[ct]
	out := make([]domain.Entry, len(entries))
	copy(out, entries)
	return out
}

// Get retrieves one entry by id within a content type partition, along with
// its position in the collection.
func (r *Registry) Get(ct domain.ContentType, id string) (domain.Entry, int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.positions[ct][id]
	if !ok {
		return domain.Entry{}, 0, false
	}
	return r.entries[ct][pos], pos, true
}

// Has reports whether an entry exists.
func (r *Registry) Has(ct domain.ContentType, id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.positions[ct][id]
	return ok
}

// Count returns the total number of entries across all collections.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, entries := range r.entries {
		n += len(entries)
	}
	return n
}

// IncrementViews bumps the view counter for an entry and returns the new
// count.
func (r *Registry) IncrementViews(ct domain.ContentType, id string) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := ViewKey(ct, id)
	r.views[key]++
	return r.views[key]
}

// Views returns the view counter for an entry.
func (r *Registry) Views(ct domain.ContentType, id string) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.views[ViewKey(ct, id)]
}

// SetViews replaces the view counters wholesale, used when warming from the
// store at startup.
func (r *Registry) SetViews(views map[string]int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.views = make(map[string]int64, len(views))
	for k, v := range views {
		r.views[k] = v
	}
}

// GetLastReload returns the timestamp of the last collections update.
func (r *Registry) GetLastReload() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastReload
}

// ViewKey builds the canonical counter key for an entry.
func ViewKey(ct domain.ContentType, id string) string {
	return string(ct) + ":" + id
}
