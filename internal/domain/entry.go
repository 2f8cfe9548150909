package domain

// Entry is the flattened, denormalized projection of a content record that
// the search index stores. Entries are immutable between index rebuilds.
//
// ID is unique within a Type partition, not globally.
type Entry struct {
	// Type is the content domain tag.
	Type ContentType `json:"type"`

	// ID is the record identifier within the Type partition.
	ID string `json:"id"`

	// Searchable fields.
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Author      string   `json:"author,omitempty"`
	Director    string   `json:"director,omitempty"`
	Creator     string   `json:"creator,omitempty"`
	Location    string   `json:"location,omitempty"`
	Tags        []string `json:"tags,omitempty"`

	// ContentType is the display label of the content domain.
	ContentType string `json:"content_type"`

	// Route is the room route that displays this entry.
	Route string `json:"route"`

	// Record is an opaque back-reference to the original content record.
	Record any `json:"-"`
}

// Result is an Entry plus its computed query score. Results are ephemeral
// and recomputed on every query.
type Result struct {
	Entry
	Score int `json:"score"`
}
