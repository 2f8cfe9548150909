package content

// Manifest is the top-level museum.yaml file mapping content domains to
// their collection files inside the content directory.
type Manifest struct {
	// Collections maps a content type tag to a JSON file name.
	Collections map[string]string `yaml:"collections"`
	// MarkdownDir holds the markdown bodies referenced by writings.
	MarkdownDir string `yaml:"markdown_dir"`
	// FeaturedDir holds the featured-image descriptor files.
	FeaturedDir string `yaml:"featured_dir"`
}

// PhotoProps is the raw JSON shape of one photography record.
type PhotoProps struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Image       string   `json:"image,omitempty"`
	Thumb       string   `json:"thumb,omitempty"`
	TakenAt     string   `json:"taken_at,omitempty"`
}

// WritingProps is the raw JSON shape of one writing record. Body names a
// markdown file inside the markdown directory.
type WritingProps struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Collection  string   `json:"collection,omitempty"`
	Body        string   `json:"body,omitempty"`
	PublishedAt string   `json:"published_at,omitempty"`
}

// TrackProps is the raw JSON shape of one music record.
type TrackProps struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Creator     string   `json:"creator,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Album       string   `json:"album,omitempty"`
	URL         string   `json:"url,omitempty"`
}

// ProjectProps is the raw JSON shape of one project record.
type ProjectProps struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	URL         string   `json:"url,omitempty"`
	Status      string   `json:"status,omitempty"`
}

// CuratedWritingProps is the raw JSON shape of one curated writing record.
type CuratedWritingProps struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Collection  string   `json:"collection,omitempty"`
	URL         string   `json:"url,omitempty"`
}

// CuratedFilmProps is the raw JSON shape of one curated cinema record.
type CuratedFilmProps struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Director    string   `json:"director,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Year        int      `json:"year,omitempty"`
}

// CuratedAlbumProps is the raw JSON shape of one curated music record.
type CuratedAlbumProps struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Creator     string   `json:"creator,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Collection  string   `json:"collection,omitempty"`
	Year        int      `json:"year,omitempty"`
}

// CuratedMiscProps is the raw JSON shape of one curated miscellany record.
type CuratedMiscProps struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Creator     string   `json:"creator,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	URL         string   `json:"url,omitempty"`
}

// RawContent holds every decoded collection file plus the list of
// collections that could not be read. Missing collections are not an error:
// the room simply renders empty.
type RawContent struct {
	Photos          []PhotoProps
	Writings        []WritingProps
	Tracks          []TrackProps
	Projects        []ProjectProps
	CuratedWritings []CuratedWritingProps
	CuratedFilms    []CuratedFilmProps
	CuratedAlbums   []CuratedAlbumProps
	CuratedMisc     []CuratedMiscProps

	// Missing lists collections that were absent or unreadable.
	Missing []string

	// MarkdownDir and FeaturedDir are resolved to absolute-ish paths
	// relative to the content directory.
	MarkdownDir string
	FeaturedDir string
}
