package search

import (
	"sync"

	"github.com/MrSnakeDoc/museum/internal/domain"
)

// Catalog is the narrow view of the content registry the index builds from.
type Catalog interface {
	All(ct domain.ContentType) []domain.Entry
}

// Index is the flat in-memory search index: every content entry across all
// collections in one ordered slice. Entries are immutable between rebuilds;
// there is no incremental update path, a changed collection requires a full
// Build.
type Index struct {
	mu      sync.RWMutex
	entries []domain.Entry
	indexed bool
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{}
}

// Build rebuilds the index from the catalog, iterating the content domains
// in their fixed registration order. Empty collections are skipped silently.
// Build is idempotent: unchanged collections produce the same sequence.
// Returns the number of indexed entries.
func (idx *Index) Build(catalog Catalog) int {
	var entries []domain.Entry
	for _, ct := range domain.AllContentTypes() {
		collection := catalog.All(ct)
		if len(collection) == 0 {
			continue
		}
		entries = append(entries, collection...)
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.entries = entries
	idx.indexed = true
	return len(entries)
}

// Entries returns a copy of the indexed entries in build order.
func (idx *Index) Entries() []domain.Entry {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	out := make([]domain.Entry, len(idx.entries))
	copy(out, idx.entries)
	return out
}

// Indexed reports whether Build has completed at least once.
func (idx *Index) Indexed() bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.indexed
}

// Len returns the number of indexed entries.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.entries)
}
