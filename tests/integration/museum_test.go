package integration

import (
	"strings"
	"testing"

	"github.com/MrSnakeDoc/museum/internal/content"
	"github.com/MrSnakeDoc/museum/internal/domain"
	"github.com/MrSnakeDoc/museum/internal/logger"
	"github.com/MrSnakeDoc/museum/internal/router"
	"github.com/MrSnakeDoc/museum/internal/search"
	"github.com/MrSnakeDoc/museum/internal/sitemap"
	"github.com/MrSnakeDoc/museum/internal/viewer"
)

const contentDir = "../../testdata/content"

type fixture struct {
	registry *content.Registry
	index    *search.Index
	engine   *search.Engine
	router   *router.Router
	viewer   *viewer.Viewer
	table    *router.Table
}

func load(t *testing.T) *fixture {
	t.Helper()

	log := logger.New("error", true)

	raw, err := content.NewLoader(contentDir, "museum.yaml").Load()
	if err != nil {
		t.Fatalf("failed to load content: %v", err)
	}
	if len(raw.Missing) != 0 {
		t.Fatalf("missing collections: %v", raw.Missing)
	}

	collections, problems := content.NewMapper().MapAll(raw)
	if len(problems) != 0 {
		t.Fatalf("mapping problems: %v", problems)
	}

	registry := content.NewRegistry()
	registry.Update(collections)

	index := search.NewIndex()
	index.Build(registry)

	table := router.DefaultTable()
	if err := table.Validate(); err != nil {
		t.Fatalf("route table invalid: %v", err)
	}

	return &fixture{
		registry: registry,
		index:    index,
		engine:   search.NewEngine(index, log),
		router:   router.New(table, log),
		viewer:   viewer.New(registry, log),
		table:    table,
	}
}

// TestVisitFlow walks a whole visit: load content, search for an entry,
// activate it, land in its room and open the lightbox.
func TestVisitFlow(t *testing.T) {
	f := load(t)

	// Every collection in the testdata set is populated.
	if f.registry.Count() != 13 {
		t.Fatalf("registry loaded %d entries, want 13", f.registry.Count())
	}
	if f.index.Len() != 13 {
		t.Fatalf("index holds %d entries, want 13", f.index.Len())
	}

	// The visitor opens search and types a query.
	f.engine.Open()
	results := f.engine.HandleQuery("tarkovsky")
	if len(results) != 1 {
		t.Fatalf("search for tarkovsky returned %d results, want 1", len(results))
	}
	if results[0].ID != "stalker" {
		t.Fatalf("top result = %s, want stalker", results[0].ID)
	}

	// Enter activates the selection: close the surface, navigate, open.
	act, ok := f.engine.Activate()
	if !ok {
		t.Fatal("activation failed")
	}
	if f.engine.IsOpen() {
		t.Error("search surface should close on activation")
	}

	nav := f.router.NavigateTo(act.Route, true, router.ActivatedNone)
	if nav.Resolution.Kind != router.ResolutionDynamic {
		t.Fatalf("activation route resolved as %s, want dynamic", nav.Resolution.Kind)
	}
	if nav.Resolution.Domain != domain.TypeCuratedFilm {
		t.Errorf("activation landed in %s, want curated-film", nav.Resolution.Domain)
	}

	view, ok := f.viewer.Open(act.Type, act.ID)
	if !ok {
		t.Fatal("lightbox open failed for activated entry")
	}
	if view.Entry.Director != "Andrei Tarkovsky" {
		t.Errorf("lightbox entry director = %q", view.Entry.Director)
	}
	if view.Views != 1 {
		t.Errorf("view counter = %d, want 1", view.Views)
	}

	// Back navigation climbs the static hierarchy to the entrance.
	wantBack := []string{"/works/curated", "/works", ""}
	for _, want := range wantBack {
		back, ok := f.router.GoBack()
		if !ok {
			t.Fatalf("GoBack() stopped early, want %q next", want)
		}
		if back.Route != want {
			t.Fatalf("GoBack() = %q, want %q", back.Route, want)
		}
	}
	if _, ok := f.router.GoBack(); ok {
		t.Error("GoBack() at the entrance should be a no-op")
	}
}

// TestSearchRanking exercises the weighted scoring against the full testdata
// corpus.
func TestSearchRanking(t *testing.T) {
	f := load(t)

	tests := []struct {
		name        string
		query       string
		expectedTop string
		minResults  int
	}{
		{
			name:        "title beats description",
			query:       "harbor notes",
			expectedTop: "harbor-notes",
			minResults:  1,
		},
		{
			name:        "creator match",
			query:       "miles davis",
			expectedTop: "in-a-silent-way",
			minResults:  1,
		},
		{
			name:        "location match",
			query:       "lisbon",
			expectedTop: "pier-dawn",
			minResults:  2,
		},
		{
			name:        "tag match spans collections",
			query:       "harbor",
			expectedTop: "harbor-notes",
			minResults:  2,
		},
		{
			name:        "content type label",
			query:       "photography",
			expectedTop: "pier-dawn",
			minResults:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := f.engine.Search(tt.query)
			if len(results) < tt.minResults {
				t.Fatalf("Search(%q) returned %d results, want at least %d",
					tt.query, len(results), tt.minResults)
			}
			if results[0].ID != tt.expectedTop {
				t.Errorf("Search(%q) top = %s (score %d), want %s",
					tt.query, results[0].ID, results[0].Score, tt.expectedTop)
			}
		})
	}
}

// TestSitemapMatchesRouteTable validates the shipped sitemap against the
// default route table.
func TestSitemapMatchesRouteTable(t *testing.T) {
	f := load(t)

	nodes, err := sitemap.Load("../../testdata/sitemap.yaml")
	if err != nil {
		t.Fatalf("failed to load sitemap: %v", err)
	}
	if err := sitemap.Validate(nodes, f.table); err != nil {
		t.Fatalf("sitemap does not match the route table: %v", err)
	}
}

// TestWritingBodiesRendered checks that markdown bodies come out as HTML.
func TestWritingBodiesRendered(t *testing.T) {
	f := load(t)

	entry, _, ok := f.registry.Get(domain.TypeWriting, "on-rain")
	if !ok {
		t.Fatal("on-rain missing from registry")
	}
	writing, ok := entry.Record.(domain.Writing)
	if !ok {
		t.Fatalf("record has type %T, want domain.Writing", entry.Record)
	}
	if !strings.Contains(writing.Body, "<strong>wait</strong>") {
		t.Errorf("body not rendered as HTML: %q", writing.Body)
	}

	// Collection routes carry the collection segment.
	if entry.Route != domain.TypeWriting.BaseRoute()+"/essays" {
		t.Errorf("entry route = %q, want the essays collection route", entry.Route)
	}
}
