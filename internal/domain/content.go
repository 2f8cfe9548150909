package domain

import "time"

// ContentType tags one of the eight content domains of the museum.
// The set is closed: the router's dynamic prefixes, the search index build
// order and the lightbox contract all key off these exact tags.
type ContentType string

const (
	TypePhoto          ContentType = "photo"
	TypeWriting        ContentType = "writing"
	TypeTrack          ContentType = "track"
	TypeProject        ContentType = "project"
	TypeCuratedWriting ContentType = "curated-writing"
	TypeCuratedFilm    ContentType = "curated-film"
	TypeCuratedAlbum   ContentType = "curated-album"
	TypeCuratedMisc    ContentType = "curated-misc"
)

// AllContentTypes returns the content domains in their fixed registration
// order: personal collections first, then the curated shelves. The search
// index is built in this order, so it also defines tie-break ordering.
func AllContentTypes() []ContentType {
	return []ContentType{
		TypePhoto,
		TypeWriting,
		TypeTrack,
		TypeProject,
		TypeCuratedWriting,
		TypeCuratedFilm,
		TypeCuratedAlbum,
		TypeCuratedMisc,
	}
}

// Valid reports whether t is one of the eight known content domains.
func (t ContentType) Valid() bool {
	for _, known := range AllContentTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// Label returns the display label for a content domain.
func (t ContentType) Label() string {
	switch t {
	case TypePhoto:
		return "Photography"
	case TypeWriting:
		return "Writing"
	case TypeTrack:
		return "Music"
	case TypeProject:
		return "Projects"
	case TypeCuratedWriting:
		return "Curated Writing"
	case TypeCuratedFilm:
		return "Cinema"
	case TypeCuratedAlbum:
		return "Curated Music"
	case TypeCuratedMisc:
		return "Miscellany"
	default:
		return string(t)
	}
}

// BaseRoute returns the room route owned by a content domain.
func (t ContentType) BaseRoute() string {
	switch t {
	case TypePhoto:
		return "/works/personal/photography"
	case TypeWriting:
		return "/works/personal/writing"
	case TypeTrack:
		return "/works/personal/music"
	case TypeProject:
		return "/works/personal/projects"
	case TypeCuratedWriting:
		return "/works/curated/writing"
	case TypeCuratedFilm:
		return "/works/curated/cinema"
	case TypeCuratedAlbum:
		return "/works/curated/music"
	case TypeCuratedMisc:
		return "/works/curated/misc"
	default:
		return ""
	}
}

// Photo is one photograph in the personal photography collection.
type Photo struct {
	ID          string
	Title       string
	Description string
	Location    string
	Tags        []string
	Image       string // asset path of the full-size image
	Thumb       string // asset path of the thumbnail
	TakenAt     time.Time
}

func (p Photo) Entry() Entry {
	return Entry{
		Type:        TypePhoto,
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Location:    p.Location,
		Tags:        p.Tags,
		ContentType: TypePhoto.Label(),
		Route:       TypePhoto.BaseRoute(),
		Record:      p,
	}
}

// Writing is one personal essay or blog post. Body holds the rendered HTML
// of the markdown source; it is not searched.
type Writing struct {
	ID          string
	Title       string
	Description string
	Tags        []string
	Collection  string // optional grouping, becomes a trailing route segment
	Body        string
	PublishedAt time.Time
}

func (w Writing) Entry() Entry {
	return Entry{
		Type:        TypeWriting,
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		Tags:        w.Tags,
		ContentType: TypeWriting.Label(),
		Route:       collectionRoute(TypeWriting, w.Collection),
		Record:      w,
	}
}

// Track is one personal music piece.
type Track struct {
	ID          string
	Title       string
	Description string
	Creator     string // performer/producer credit, usually the site owner
	Tags        []string
	Album       string
	URL         string
}

func (t Track) Entry() Entry {
	return Entry{
		Type:        TypeTrack,
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Creator:     t.Creator,
		Tags:        t.Tags,
		ContentType: TypeTrack.Label(),
		Route:       TypeTrack.BaseRoute(),
		Record:      t,
	}
}

// Project is one personal project.
type Project struct {
	ID          string
	Title       string
	Description string
	Tags        []string
	URL         string
	Status      string // ex: "active", "archived"
}

func (p Project) Entry() Entry {
	return Entry{
		Type:        TypeProject,
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Tags:        p.Tags,
		ContentType: TypeProject.Label(),
		Route:       TypeProject.BaseRoute(),
		Record:      p,
	}
}

// CuratedWriting is a recommended book or article by someone else.
type CuratedWriting struct {
	ID          string
	Title       string
	Author      string
	Description string
	Tags        []string
	Collection  string // optional shelf, becomes a trailing route segment
	URL         string
}

func (c CuratedWriting) Entry() Entry {
	return Entry{
		Type:        TypeCuratedWriting,
		ID:          c.ID,
		Title:       c.Title,
		Author:      c.Author,
		Description: c.Description,
		Tags:        c.Tags,
		ContentType: TypeCuratedWriting.Label(),
		Route:       collectionRoute(TypeCuratedWriting, c.Collection),
		Record:      c,
	}
}

// CuratedFilm is a recommended film.
type CuratedFilm struct {
	ID          string
	Title       string
	Director    string
	Description string
	Tags        []string
	Year        int
}

func (c CuratedFilm) Entry() Entry {
	return Entry{
		Type:        TypeCuratedFilm,
		ID:          c.ID,
		Title:       c.Title,
		Director:    c.Director,
		Description: c.Description,
		Tags:        c.Tags,
		ContentType: TypeCuratedFilm.Label(),
		Route:       TypeCuratedFilm.BaseRoute(),
		Record:      c,
	}
}

// CuratedAlbum is a recommended album.
type CuratedAlbum struct {
	ID          string
	Title       string
	Creator     string // artist credit
	Description string
	Tags        []string
	Collection  string // optional shelf, ex: "albums"
	Year        int
}

func (c CuratedAlbum) Entry() Entry {
	return Entry{
		Type:        TypeCuratedAlbum,
		ID:          c.ID,
		Title:       c.Title,
		Creator:     c.Creator,
		Description: c.Description,
		Tags:        c.Tags,
		ContentType: TypeCuratedAlbum.Label(),
		Route:       collectionRoute(TypeCuratedAlbum, c.Collection),
		Record:      c,
	}
}

// CuratedMisc is anything else worth recommending.
type CuratedMisc struct {
	ID          string
	Title       string
	Creator     string
	Description string
	Tags        []string
	URL         string
}

func (c CuratedMisc) Entry() Entry {
	return Entry{
		Type:        TypeCuratedMisc,
		ID:          c.ID,
		Title:       c.Title,
		Creator:     c.Creator,
		Description: c.Description,
		Tags:        c.Tags,
		ContentType: TypeCuratedMisc.Label(),
		Route:       TypeCuratedMisc.BaseRoute(),
		Record:      c,
	}
}

func collectionRoute(t ContentType, collection string) string {
	if collection == "" {
		return t.BaseRoute()
	}
	return t.BaseRoute() + "/" + collection
}
