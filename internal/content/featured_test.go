package content

import (
	"strings"
	"testing"
)

func TestFeaturedLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "entrance.json", `{"light": "hall-day.webp", "dark": "hall-night.webp"}`)

	loader := NewFeaturedLoader(dir)
	img, err := loader.Load("entrance")
	if err != nil {
		t.Fatalf("Load(entrance) error = %v", err)
	}
	if img.Light != "hall-day.webp" || img.Dark != "hall-night.webp" {
		t.Errorf("Load(entrance) = %+v, want both variants", img)
	}
}

func TestFeaturedLoadErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.json", "{not json")

	loader := NewFeaturedLoader(dir)

	tests := []struct {
		name    string
		feature string
	}{
		{name: "missing descriptor", feature: "ghost"},
		{name: "invalid json", feature: "broken"},
		{name: "empty name", feature: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loader.Load(tt.feature); err == nil {
				t.Errorf("Load(%q) should fail", tt.feature)
			}
		})
	}
}

func TestFeaturedLoadFlattensPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "entrance.json", `{"light": "a", "dark": "b"}`)

	loader := NewFeaturedLoader(dir)

	// Path separators are stripped; the lookup stays inside the directory.
	img, err := loader.Load("../../../entrance")
	if err != nil {
		t.Fatalf("Load with traversal = %v, want flattened lookup to succeed", err)
	}
	if img.Light != "a" {
		t.Errorf("Load returned %+v, want the local descriptor", img)
	}
}

func TestRendererGFM(t *testing.T) {
	renderer := NewRenderer()

	out, err := renderer.Render([]byte("~~old~~ and a [link](https://example.com)"))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out == "" {
		t.Fatal("Render() returned empty output")
	}
	for _, want := range []string{"<del>", "<a href="} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() output %q missing %q", out, want)
		}
	}
}
