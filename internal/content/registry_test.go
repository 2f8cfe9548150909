package content

import (
	"testing"

	"github.com/MrSnakeDoc/museum/internal/domain"
)

func seedRegistry() *Registry {
	r := NewRegistry()
	r.Update(map[domain.ContentType][]domain.Entry{
		domain.TypePhoto: {
			{Type: domain.TypePhoto, ID: "pier", Title: "Pier"},
			{Type: domain.TypePhoto, ID: "dunes", Title: "Dunes"},
		},
		domain.TypeCuratedFilm: {
			{Type: domain.TypeCuratedFilm, ID: "stalker", Title: "Stalker"},
		},
	})
	return r
}

func TestRegistryGet(t *testing.T) {
	r := seedRegistry()

	entry, pos, ok := r.Get(domain.TypePhoto, "dunes")
	if !ok {
		t.Fatal("Get(photo, dunes) = false, want true")
	}
	if entry.Title != "Dunes" {
		t.Errorf("entry.Title = %q, want Dunes", entry.Title)
	}
	if pos != 1 {
		t.Errorf("position = %d, want 1", pos)
	}

	if _, _, ok := r.Get(domain.TypePhoto, "ghost"); ok {
		t.Error("Get() found an entry that does not exist")
	}
	if _, _, ok := r.Get(domain.TypeTrack, "pier"); ok {
		t.Error("Get() matched an id across content types")
	}
}

func TestRegistryCount(t *testing.T) {
	r := seedRegistry()
	if got := r.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
}

func TestRegistryAllPreservesOrder(t *testing.T) {
	r := seedRegistry()

	photos := r.All(domain.TypePhoto)
	if len(photos) != 2 || photos[0].ID != "pier" || photos[1].ID != "dunes" {
		t.Errorf("All(photo) = %v, want [pier dunes] in insertion order", photos)
	}

	if got := r.All(domain.TypeTrack); len(got) != 0 {
		t.Errorf("All(track) = %v, want empty", got)
	}
}

func TestRegistryUpdateReplaces(t *testing.T) {
	r := seedRegistry()
	r.Update(map[domain.ContentType][]domain.Entry{
		domain.TypePhoto: {
			{Type: domain.TypePhoto, ID: "new", Title: "New"},
		},
	})

	if r.Count() != 1 {
		t.Errorf("Count() after update = %d, want 1", r.Count())
	}
	if r.Has(domain.TypeCuratedFilm, "stalker") {
		t.Error("Update() should drop collections absent from the new set")
	}
	if r.GetLastReload().IsZero() {
		t.Error("Update() should stamp the reload time")
	}
}

func TestRegistryViewCounters(t *testing.T) {
	r := seedRegistry()

	if got := r.IncrementViews(domain.TypePhoto, "pier"); got != 1 {
		t.Errorf("first IncrementViews = %d, want 1", got)
	}
	if got := r.IncrementViews(domain.TypePhoto, "pier"); got != 2 {
		t.Errorf("second IncrementViews = %d, want 2", got)
	}
	if got := r.Views(domain.TypePhoto, "pier"); got != 2 {
		t.Errorf("Views() = %d, want 2", got)
	}
	if got := r.Views(domain.TypePhoto, "dunes"); got != 0 {
		t.Errorf("Views() for unseen entry = %d, want 0", got)
	}
}

func TestRegistryViewsSurviveUpdate(t *testing.T) {
	r := seedRegistry()
	r.IncrementViews(domain.TypePhoto, "pier")

	// Reload the same collection; counters must not reset.
	r.Update(map[domain.ContentType][]domain.Entry{
		domain.TypePhoto: {
			{Type: domain.TypePhoto, ID: "pier", Title: "Pier"},
		},
	})

	if got := r.Views(domain.TypePhoto, "pier"); got != 1 {
		t.Errorf("Views() after update = %d, want 1", got)
	}
}

func TestRegistrySetViews(t *testing.T) {
	r := seedRegistry()
	r.SetViews(map[string]int64{
		ViewKey(domain.TypePhoto, "pier"):          7,
		ViewKey(domain.TypeCuratedFilm, "stalker"): 3,
	})

	if got := r.Views(domain.TypePhoto, "pier"); got != 7 {
		t.Errorf("Views(pier) = %d, want 7", got)
	}
	if got := r.Views(domain.TypeCuratedFilm, "stalker"); got != 3 {
		t.Errorf("Views(stalker) = %d, want 3", got)
	}
}
