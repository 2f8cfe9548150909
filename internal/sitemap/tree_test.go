package sitemap

import (
	"os"
	"path/filepath"
	"testing"
)

// routeSet is a Resolver backed by a fixed set of routes.
type routeSet map[string]bool

func (r routeSet) Resolves(route string) bool { return r[route] }

func route(s string) *string { return &s }

func writeSitemap(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sitemap.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write sitemap: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeSitemap(t, `sitemap:
  - label: Entrance Hall
    route: ""
  - label: The Works
    route: /works
    children:
      - label: Personal
        route: /works/personal
      - label: Curated
        route: /works/curated
  - label: Elsewhere
    description: grouping label only
`)

	nodes, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(nodes) != 3 {
		t.Fatalf("Load() returned %d top-level nodes, want 3", len(nodes))
	}
	if nodes[0].Route == nil || *nodes[0].Route != "" {
		t.Error("home node should carry an explicit empty route")
	}
	if nodes[2].Route != nil {
		t.Error("grouping node should have no route")
	}
	if len(nodes[1].Children) != 2 {
		t.Errorf("works node has %d children, want 2", len(nodes[1].Children))
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("Load() on missing file should fail")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeSitemap(t, "sitemap: [label: {{")
		if _, err := Load(path); err == nil {
			t.Error("Load() on invalid yaml should fail")
		}
	})

	t.Run("empty tree", func(t *testing.T) {
		path := writeSitemap(t, "sitemap: []")
		if _, err := Load(path); err == nil {
			t.Error("Load() on empty tree should fail")
		}
	})
}

func TestValidate(t *testing.T) {
	resolver := routeSet{
		"":       true,
		"/works": true,
	}

	tests := []struct {
		name    string
		nodes   []Node
		wantErr bool
	}{
		{
			name: "all routes resolve",
			nodes: []Node{
				{Label: "Home", Route: route("")},
				{Label: "Works", Route: route("/works")},
			},
			wantErr: false,
		},
		{
			name: "grouping labels are skipped",
			nodes: []Node{
				{Label: "Section", Children: []Node{
					{Label: "Works", Route: route("/works")},
				}},
			},
			wantErr: false,
		},
		{
			name: "broken route",
			nodes: []Node{
				{Label: "Ghost", Route: route("/nowhere")},
			},
			wantErr: true,
		},
		{
			name: "broken route in child",
			nodes: []Node{
				{Label: "Section", Children: []Node{
					{Label: "Ghost", Route: route("/nowhere")},
				}},
			},
			wantErr: true,
		},
		{
			name: "missing label",
			nodes: []Node{
				{Route: route("/works")},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.nodes, resolver)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
