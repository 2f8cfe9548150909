package viewer

import (
	"github.com/MrSnakeDoc/museum/internal/content"
	"github.com/MrSnakeDoc/museum/internal/domain"
	"github.com/MrSnakeDoc/museum/internal/logger"
)

// View is one opened lightbox: the entry, its full sibling collection in
// registry order, and the entry's position for prev/next stepping.
type View struct {
	Entry      domain.Entry       `json:"entry"`
	Type       domain.ContentType `json:"type"`
	Siblings   []domain.Entry     `json:"siblings"`
	StartIndex int                `json:"start_index"`
	Views      int64              `json:"views"`
}

// Grid is a whole collection opened at once.
type Grid struct {
	Type    domain.ContentType `json:"type"`
	Title   string             `json:"title"`
	Entries []domain.Entry     `json:"entries"`
}

// Viewer resolves lightbox opens against the content registry.
type Viewer struct {
	registry *content.Registry
	logger   logger.Logger
}

// New creates a viewer over the registry.
func New(registry *content.Registry, log logger.Logger) *Viewer {
	return &Viewer{
		registry: registry,
		logger:   log,
	}
}

// Open resolves a single entry for the lightbox and bumps its view counter.
// A missing entity is logged and ignored: the caller gets false, the visitor
// sees nothing happen.
func (v *Viewer) Open(ct domain.ContentType, id string) (*View, bool) {
	entry, pos, ok := v.registry.Get(ct, id)
	if !ok {
		v.logger.Warn("lightbox open for unknown entry",
			logger.String("type", string(ct)),
			logger.String("id", id))
		return nil, false
	}

	views := v.registry.IncrementViews(ct, id)

	return &View{
		Entry:      entry,
		Type:       ct,
		Siblings:   v.registry.All(ct),
		StartIndex: pos,
		Views:      views,
	}, true
}

// OpenGrid resolves a whole collection for the grid lightbox. An empty
// collection is a valid grid, not an error.
func (v *Viewer) OpenGrid(ct domain.ContentType) *Grid {
	return &Grid{
		Type:    ct,
		Title:   ct.Label(),
		Entries: v.registry.All(ct),
	}
}
