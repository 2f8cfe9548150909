package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/museum/internal/domain"
)

// Loader handles loading and parsing of the content directory: the
// museum.yaml manifest plus one JSON file per collection.
type Loader struct {
	dir      string
	manifest string
}

// NewLoader creates a new content loader. manifest is a file name relative
// to dir.
func NewLoader(dir, manifest string) *Loader {
	return &Loader{
		dir:      dir,
		manifest: manifest,
	}
}

// Dir returns the content directory being loaded.
func (l *Loader) Dir() string {
	return l.dir
}

// Load reads the manifest and every collection file it names. A missing or
// unreadable collection file is recorded in RawContent.Missing and skipped;
// only a broken manifest is a hard error.
func (l *Loader) Load() (*RawContent, error) {
	data, err := os.ReadFile(filepath.Join(l.dir, l.manifest))
	if err != nil {
		return nil, fmt.Errorf("failed to read content manifest: %w", err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse content manifest: %w", err)
	}

	raw := &RawContent{
		MarkdownDir: l.subdir(manifest.MarkdownDir, "writings"),
		FeaturedDir: l.subdir(manifest.FeaturedDir, "featured"),
	}

	loadCollection(l, manifest, domain.TypePhoto, &raw.Photos, raw)
	loadCollection(l, manifest, domain.TypeWriting, &raw.Writings, raw)
	loadCollection(l, manifest, domain.TypeTrack, &raw.Tracks, raw)
	loadCollection(l, manifest, domain.TypeProject, &raw.Projects, raw)
	loadCollection(l, manifest, domain.TypeCuratedWriting, &raw.CuratedWritings, raw)
	loadCollection(l, manifest, domain.TypeCuratedFilm, &raw.CuratedFilms, raw)
	loadCollection(l, manifest, domain.TypeCuratedAlbum, &raw.CuratedAlbums, raw)
	loadCollection(l, manifest, domain.TypeCuratedMisc, &raw.CuratedMisc, raw)

	return raw, nil
}

func (l *Loader) subdir(name, def string) string {
	if name == "" {
		name = def
	}
	return filepath.Join(l.dir, name)
}

// loadCollection decodes one collection file into out. Absence is recorded,
// never fatal.
func loadCollection[T any](l *Loader, manifest Manifest, ct domain.ContentType, out *[]T, raw *RawContent) {
	file, ok := manifest.Collections[string(ct)]
	if !ok || file == "" {
		raw.Missing = append(raw.Missing, string(ct))
		return
	}

	data, err := os.ReadFile(filepath.Join(l.dir, file))
	if err != nil {
		raw.Missing = append(raw.Missing, string(ct))
		return
	}

	if err := json.Unmarshal(data, out); err != nil {
		raw.Missing = append(raw.Missing, string(ct))
		*out = nil
		return
	}
}
