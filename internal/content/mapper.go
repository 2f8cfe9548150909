package content

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MrSnakeDoc/museum/internal/domain"
)

// Mapper converts raw collection records into domain entries. Records
// without an id or title are skipped; a skipped record is reported as a
// problem string, never an error.
type Mapper struct {
	renderer *Renderer
}

// NewMapper creates a new mapper instance.
func NewMapper() *Mapper {
	return &Mapper{renderer: NewRenderer()}
}

// MapAll maps every collection of raw content into entry slices keyed by
// content type, preserving in-file order. Problems collect skipped records
// and failed markdown bodies for logging by the caller.
func (m *Mapper) MapAll(raw *RawContent) (map[domain.ContentType][]domain.Entry, []string) {
	collections := make(map[domain.ContentType][]domain.Entry, 8)
	var problems []string

	report := func(ct domain.ContentType, id, msg string) {
		problems = append(problems, fmt.Sprintf("%s/%s: %s", ct, id, msg))
	}

	var photos []domain.Entry
	for _, p := range raw.Photos {
		if p.ID == "" || p.Title == "" {
			report(domain.TypePhoto, p.ID, "missing id or title")
			continue
		}
		photos = append(photos, domain.Photo{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Location:    p.Location,
			Tags:        p.Tags,
			Image:       p.Image,
			Thumb:       p.Thumb,
			TakenAt:     parseDate(p.TakenAt),
		}.Entry())
	}
	collections[domain.TypePhoto] = photos

	var writings []domain.Entry
	for _, w := range raw.Writings {
		if w.ID == "" || w.Title == "" {
			report(domain.TypeWriting, w.ID, "missing id or title")
			continue
		}
		body := ""
		if w.Body != "" {
			src, err := os.ReadFile(filepath.Join(raw.MarkdownDir, filepath.Base(w.Body)))
			if err != nil {
				report(domain.TypeWriting, w.ID, "missing markdown body "+w.Body)
			} else if body, err = m.renderer.Render(src); err != nil {
				report(domain.TypeWriting, w.ID, "failed to render body: "+err.Error())
				body = ""
			}
		}
		writings = append(writings, domain.Writing{
			ID:          w.ID,
			Title:       w.Title,
			Description: w.Description,
			Tags:        w.Tags,
			Collection:  w.Collection,
			Body:        body,
			PublishedAt: parseDate(w.PublishedAt),
		}.Entry())
	}
	collections[domain.TypeWriting] = writings

	var tracks []domain.Entry
	for _, t := range raw.Tracks {
		if t.ID == "" || t.Title == "" {
			report(domain.TypeTrack, t.ID, "missing id or title")
			continue
		}
		tracks = append(tracks, domain.Track{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Creator:     t.Creator,
			Tags:        t.Tags,
			Album:       t.Album,
			URL:         t.URL,
		}.Entry())
	}
	collections[domain.TypeTrack] = tracks

	var projects []domain.Entry
	for _, p := range raw.Projects {
		if p.ID == "" || p.Title == "" {
			report(domain.TypeProject, p.ID, "missing id or title")
			continue
		}
		projects = append(projects, domain.Project{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Tags:        p.Tags,
			URL:         p.URL,
			Status:      p.Status,
		}.Entry())
	}
	collections[domain.TypeProject] = projects

	var curatedWritings []domain.Entry
	for _, c := range raw.CuratedWritings {
		if c.ID == "" || c.Title == "" {
			report(domain.TypeCuratedWriting, c.ID, "missing id or title")
			continue
		}
		curatedWritings = append(curatedWritings, domain.CuratedWriting{
			ID:          c.ID,
			Title:       c.Title,
			Author:      c.Author,
			Description: c.Description,
			Tags:        c.Tags,
			Collection:  c.Collection,
			URL:         c.URL,
		}.Entry())
	}
	collections[domain.TypeCuratedWriting] = curatedWritings

	var curatedFilms []domain.Entry
	for _, c := range raw.CuratedFilms {
		if c.ID == "" || c.Title == "" {
			report(domain.TypeCuratedFilm, c.ID, "missing id or title")
			continue
		}
		curatedFilms = append(curatedFilms, domain.CuratedFilm{
			ID:          c.ID,
			Title:       c.Title,
			Director:    c.Director,
			Description: c.Description,
			Tags:        c.Tags,
			Year:        c.Year,
		}.Entry())
	}
	collections[domain.TypeCuratedFilm] = curatedFilms

	var curatedAlbums []domain.Entry
	for _, c := range raw.CuratedAlbums {
		if c.ID == "" || c.Title == "" {
			report(domain.TypeCuratedAlbum, c.ID, "missing id or title")
			continue
		}
		curatedAlbums = append(curatedAlbums, domain.CuratedAlbum{
			ID:          c.ID,
			Title:       c.Title,
			Creator:     c.Creator,
			Description: c.Description,
			Tags:        c.Tags,
			Collection:  c.Collection,
			Year:        c.Year,
		}.Entry())
	}
	collections[domain.TypeCuratedAlbum] = curatedAlbums

	var curatedMisc []domain.Entry
	for _, c := range raw.CuratedMisc {
		if c.ID == "" || c.Title == "" {
			report(domain.TypeCuratedMisc, c.ID, "missing id or title")
			continue
		}
		curatedMisc = append(curatedMisc, domain.CuratedMisc{
			ID:          c.ID,
			Title:       c.Title,
			Creator:     c.Creator,
			Description: c.Description,
			Tags:        c.Tags,
			URL:         c.URL,
		}.Entry())
	}
	collections[domain.TypeCuratedMisc] = curatedMisc

	return collections, problems
}

// parseDate accepts RFC3339 or plain dates; anything else is a zero time.
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}
