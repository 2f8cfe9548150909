package viewer

import (
	"testing"

	"github.com/MrSnakeDoc/museum/internal/content"
	"github.com/MrSnakeDoc/museum/internal/domain"
	"github.com/MrSnakeDoc/museum/internal/logger"
)

func newTestViewer() *Viewer {
	registry := content.NewRegistry()
	registry.Update(map[domain.ContentType][]domain.Entry{
		domain.TypePhoto: {
			{Type: domain.TypePhoto, ID: "pier", Title: "Pier"},
			{Type: domain.TypePhoto, ID: "dunes", Title: "Dunes"},
			{Type: domain.TypePhoto, ID: "harbor", Title: "Harbor"},
		},
	})
	return New(registry, logger.New("error", true))
}

func TestOpen(t *testing.T) {
	v := newTestViewer()

	view, ok := v.Open(domain.TypePhoto, "dunes")
	if !ok {
		t.Fatal("Open(photo, dunes) = false, want true")
	}
	if view.Entry.Title != "Dunes" {
		t.Errorf("view.Entry.Title = %q, want Dunes", view.Entry.Title)
	}
	if view.StartIndex != 1 {
		t.Errorf("view.StartIndex = %d, want 1", view.StartIndex)
	}
	if len(view.Siblings) != 3 {
		t.Errorf("view has %d siblings, want the whole collection (3)", len(view.Siblings))
	}
	if view.Views != 1 {
		t.Errorf("view.Views = %d, want 1 (this open counted)", view.Views)
	}

	// A second open bumps the counter again.
	view, _ = v.Open(domain.TypePhoto, "dunes")
	if view.Views != 2 {
		t.Errorf("view.Views on reopen = %d, want 2", view.Views)
	}
}

func TestOpenUnknownEntry(t *testing.T) {
	v := newTestViewer()

	if _, ok := v.Open(domain.TypePhoto, "ghost"); ok {
		t.Error("Open() of unknown entry should report false")
	}
	if _, ok := v.Open(domain.TypeTrack, "pier"); ok {
		t.Error("Open() must not match ids across content types")
	}
}

func TestOpenGrid(t *testing.T) {
	v := newTestViewer()

	grid := v.OpenGrid(domain.TypePhoto)
	if grid.Title != "Photography" {
		t.Errorf("grid.Title = %q, want Photography", grid.Title)
	}
	if len(grid.Entries) != 3 {
		t.Errorf("grid has %d entries, want 3", len(grid.Entries))
	}
}

func TestOpenGridEmptyCollection(t *testing.T) {
	v := newTestViewer()

	grid := v.OpenGrid(domain.TypeCuratedFilm)
	if grid == nil {
		t.Fatal("OpenGrid() of empty collection = nil, want empty grid")
	}
	if len(grid.Entries) != 0 {
		t.Errorf("empty collection grid has %d entries", len(grid.Entries))
	}
}
