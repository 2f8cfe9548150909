package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FeaturedImage is the theme-aware image pair shown by a photo-space panel.
type FeaturedImage struct {
	Light string `json:"light"`
	Dark  string `json:"dark"`
}

// PlaceholderFeatured is rendered when a descriptor cannot be loaded.
// A failed featured load is never surfaced to the visitor.
var PlaceholderFeatured = FeaturedImage{
	Light: "placeholder-light.svg",
	Dark:  "placeholder-dark.svg",
}

// FeaturedLoader reads featured-image descriptor files from the featured
// directory.
type FeaturedLoader struct {
	dir string
}

// NewFeaturedLoader creates a loader over the featured directory.
func NewFeaturedLoader(dir string) *FeaturedLoader {
	return &FeaturedLoader{dir: dir}
}

// Load reads the descriptor named by feature. The name is flattened to its
// base so a descriptor lookup can never escape the featured directory.
func (f *FeaturedLoader) Load(feature string) (FeaturedImage, error) {
	if feature == "" {
		return FeaturedImage{}, fmt.Errorf("empty feature name")
	}

	path := filepath.Join(f.dir, filepath.Base(feature)+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return FeaturedImage{}, fmt.Errorf("failed to read featured descriptor: %w", err)
	}

	var img FeaturedImage
	if err := json.Unmarshal(data, &img); err != nil {
		return FeaturedImage{}, fmt.Errorf("failed to parse featured descriptor: %w", err)
	}
	return img, nil
}
