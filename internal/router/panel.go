package router

import "github.com/MrSnakeDoc/museum/internal/domain"

// PanelKind is the variant tag of a wall panel. Each room paints a fixed set
// of panels and every panel renders according to its kind.
type PanelKind string

const (
	// KindNavigation is a clickable panel carrying a target route.
	KindNavigation PanelKind = "navigation"
	// KindContent delegates to a content domain for its body.
	KindContent PanelKind = "content"
	// KindArtwork is a static, non-interactive text render.
	KindArtwork PanelKind = "artwork"
	// KindPlaceholder is static filler text.
	KindPlaceholder PanelKind = "placeholder"
	// KindSectionTitle is a large static heading.
	KindSectionTitle PanelKind = "section-title"
	// KindPhotoSpace shows a theme-aware featured image pair loaded from a
	// small descriptor file. Load failure degrades to a placeholder.
	KindPhotoSpace PanelKind = "photo-space"
	// KindBlogList delegates to a content domain rendered as a post list.
	KindBlogList PanelKind = "blog-list"
	// KindGallery delegates to a content domain rendered as a grid.
	KindGallery PanelKind = "gallery"
	// KindEmpty clears the panel; the optional front panel is hidden.
	KindEmpty PanelKind = "empty"
)

// Panel is one wall of a room. Only the fields relevant to its Kind are set.
type Panel struct {
	Kind PanelKind `json:"kind"`

	// Navigation fields
	Target          string `json:"target,omitempty"`           // target route
	Label           string `json:"label,omitempty"`            // display label
	ActivationLabel string `json:"activation_label,omitempty"` // label shown on hover/focus

	// Static render fields (artwork, placeholder, section-title)
	Text string `json:"text,omitempty"`

	// Delegation fields (content, blog-list, gallery)
	Domain domain.ContentType `json:"domain,omitempty"`

	// Photo-space fields
	Feature string `json:"feature,omitempty"` // featured-image descriptor name
}

// Layout selects between the 3-panel and 4-panel room records.
type Layout string

const (
	LayoutThreePanel Layout = "three-panel"
	LayoutFourPanel  Layout = "four-panel"
)

// Room is one static route table configuration.
type Room struct {
	Title  string `json:"title"`
	Layout Layout `json:"layout"`

	// Three-panel layout
	Back  Panel `json:"back,omitempty"`
	Left  Panel `json:"left,omitempty"`
	Right Panel `json:"right,omitempty"`

	// Four-panel layout
	Heading     string `json:"heading,omitempty"`
	Leftmost    Panel  `json:"leftmost,omitempty"`
	Leftmiddle  Panel  `json:"leftmiddle,omitempty"`
	Rightmiddle Panel  `json:"rightmiddle,omitempty"`
	Rightmost   Panel  `json:"rightmost,omitempty"`
}

// Panels returns the room's panels in wall order for the active layout.
func (r Room) Panels() []Panel {
	if r.Layout == LayoutFourPanel {
		return []Panel{r.Leftmost, r.Leftmiddle, r.Rightmiddle, r.Rightmost}
	}
	return []Panel{r.Back, r.Left, r.Right}
}

// ActivatedPanel records which wall the visitor clicked to trigger the
// current navigation. It feeds the lateral view-transition rules.
type ActivatedPanel string

const (
	ActivatedNone  ActivatedPanel = "none"
	ActivatedLeft  ActivatedPanel = "left"
	ActivatedRight ActivatedPanel = "right"
	ActivatedFront ActivatedPanel = "front"
	ActivatedBack  ActivatedPanel = "back"
)
