package search

import (
	"testing"

	"github.com/MrSnakeDoc/museum/internal/domain"
	"github.com/MrSnakeDoc/museum/internal/logger"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	idx := NewIndex()
	idx.Build(mapCatalog{
		domain.TypePhoto: {
			{Type: domain.TypePhoto, ID: "harbor", Title: "Harbor Lights", Route: "/works/personal/photography"},
			{Type: domain.TypePhoto, ID: "dunes", Title: "Dunes at Noon", Route: "/works/personal/photography"},
		},
		domain.TypeWriting: {
			{Type: domain.TypeWriting, ID: "on-harbors", Title: "On Harbors", Route: "/works/personal/writing"},
		},
	})
	return NewEngine(idx, logger.New("error", true))
}

func TestHandleQueryResetsSelection(t *testing.T) {
	e := newTestEngine(t)

	results := e.HandleQuery("harbor")
	if len(results) != 2 {
		t.Fatalf("HandleQuery(harbor) returned %d results, want 2", len(results))
	}
	if e.Selected() != 0 {
		t.Errorf("Selected() = %d after fresh query, want 0", e.Selected())
	}

	e.MoveDown()
	e.HandleQuery("dunes")
	if e.Selected() != 0 {
		t.Errorf("Selected() = %d after new query, want 0", e.Selected())
	}
}

func TestSelectionClamping(t *testing.T) {
	e := newTestEngine(t)
	e.HandleQuery("harbor") // two results

	if got := e.MoveUp(); got != 0 {
		t.Errorf("MoveUp() at top = %d, want 0", got)
	}
	if got := e.MoveDown(); got != 1 {
		t.Errorf("MoveDown() = %d, want 1", got)
	}
	if got := e.MoveDown(); got != 1 {
		t.Errorf("MoveDown() at bottom = %d, want 1 (clamped)", got)
	}
	if got := e.MoveUp(); got != 0 {
		t.Errorf("MoveUp() = %d, want 0", got)
	}
}

func TestMoveOnEmptyResults(t *testing.T) {
	e := newTestEngine(t)

	if got := e.MoveDown(); got != 0 {
		t.Errorf("MoveDown() with no results = %d, want 0", got)
	}
	if got := e.MoveUp(); got != 0 {
		t.Errorf("MoveUp() with no results = %d, want 0", got)
	}
}

func TestOpenCloseLifecycle(t *testing.T) {
	e := newTestEngine(t)

	if e.IsOpen() {
		t.Error("engine should start closed")
	}

	e.Open()
	if !e.IsOpen() {
		t.Error("IsOpen() = false after Open")
	}

	e.HandleQuery("harbor")
	e.MoveDown()
	e.Close()

	if e.IsOpen() {
		t.Error("IsOpen() = true after Close")
	}
	if len(e.Results()) != 0 {
		t.Error("Close() should clear results")
	}
	if e.Selected() != 0 {
		t.Error("Close() should reset selection")
	}
}

func TestActivate(t *testing.T) {
	e := newTestEngine(t)
	e.Open()
	e.HandleQuery("harbor")
	e.MoveDown() // select the second result

	act, ok := e.Activate()
	if !ok {
		t.Fatal("Activate() = false, want true")
	}
	if act.ID != "on-harbors" {
		t.Errorf("Activate().ID = %s, want on-harbors", act.ID)
	}
	if act.Type != domain.TypeWriting {
		t.Errorf("Activate().Type = %s, want writing", act.Type)
	}
	if act.Route != "/works/personal/writing" {
		t.Errorf("Activate().Route = %s, want /works/personal/writing", act.Route)
	}

	// Activation closes the surface and clears state.
	if e.IsOpen() {
		t.Error("surface should close on activation")
	}
	if len(e.Results()) != 0 {
		t.Error("results should clear on activation")
	}
}

func TestActivateWithoutResults(t *testing.T) {
	e := newTestEngine(t)
	e.Open()

	if _, ok := e.Activate(); ok {
		t.Error("Activate() with no results should report false")
	}
}

func TestSearchDoesNotTouchSelection(t *testing.T) {
	e := newTestEngine(t)
	e.HandleQuery("harbor")
	e.MoveDown()

	_ = e.Search("dunes")

	if e.Selected() != 1 {
		t.Errorf("Search() moved selection to %d, want 1 untouched", e.Selected())
	}
}

func TestHandleQueryRanking(t *testing.T) {
	e := newTestEngine(t)

	results := e.HandleQuery("harbor")

	// "Harbor Lights" (title) and "On Harbors" (title) tie; index order
	// breaks the tie: photo collections are indexed before writing.
	if results[0].ID != "harbor" {
		t.Errorf("results[0].ID = %s, want harbor", results[0].ID)
	}
	if results[1].ID != "on-harbors" {
		t.Errorf("results[1].ID = %s, want on-harbors", results[1].ID)
	}
}
