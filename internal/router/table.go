package router

import (
	"fmt"
	"strings"

	"github.com/MrSnakeDoc/museum/internal/domain"
)

// ResolutionKind tags the outcome of resolving a route.
type ResolutionKind string

const (
	// ResolutionStatic means the route matched a room in the static table.
	ResolutionStatic ResolutionKind = "static"
	// ResolutionDynamic means the route belongs to one of the eight content
	// domains and rendering is delegated to that domain entirely.
	ResolutionDynamic ResolutionKind = "dynamic"
	// ResolutionNotFound is the terminal not-found state.
	ResolutionNotFound ResolutionKind = "not_found"
)

// Resolution is the tagged result of resolving a route, evaluated once per
// navigation.
type Resolution struct {
	Kind  ResolutionKind `json:"kind"`
	Route string         `json:"route"`

	// Static
	Room Room `json:"room,omitempty"`

	// Dynamic
	Domain       domain.ContentType `json:"domain,omitempty"`
	CollectionID string             `json:"collection_id,omitempty"`
}

// Table holds the static route table, the parent hierarchy and the dynamic
// domain prefixes. It is built once at process start and never mutated.
type Table struct {
	rooms    map[string]Room
	parents  map[string]string
	prefixes []domain.ContentType // fixed priority order
}

// NewTable builds a table from explicit rooms and parents. The dynamic
// prefixes are always the eight content domains in registration order.
func NewTable(rooms map[string]Room, parents map[string]string) *Table {
	return &Table{
		rooms:    rooms,
		parents:  parents,
		prefixes: domain.AllContentTypes(),
	}
}

// Resolve maps a route to its tagged resolution. Exact static rooms win,
// then the eight domain prefixes are checked in fixed order (base route or
// base route plus exactly one trailing collection segment), then not-found.
func (t *Table) Resolve(route string) Resolution {
	if room, ok := t.rooms[route]; ok {
		return Resolution{Kind: ResolutionStatic, Route: route, Room: room}
	}

	for _, ct := range t.prefixes {
		base := ct.BaseRoute()
		if route == base {
			return Resolution{Kind: ResolutionDynamic, Route: route, Domain: ct}
		}
		if rest, ok := strings.CutPrefix(route, base+"/"); ok {
			// Exactly one trailing segment identifies a collection.
			if rest != "" && !strings.Contains(rest, "/") {
				return Resolution{Kind: ResolutionDynamic, Route: route, Domain: ct, CollectionID: rest}
			}
		}
	}

	return Resolution{Kind: ResolutionNotFound, Route: route}
}

// Resolves reports whether a route resolves to anything other than not-found.
func (t *Table) Resolves(route string) bool {
	return t.Resolve(route).Kind != ResolutionNotFound
}

// Room returns the static room config for a route.
func (t *Table) Room(route string) (Room, bool) {
	room, ok := t.rooms[route]
	return room, ok
}

// Parent returns the statically-declared parent of a route. Dynamic
// collection routes fall back to their domain base route so back-navigation
// stays deterministic without enumerating collections in the parent map.
func (t *Table) Parent(route string) (string, bool) {
	if parent, ok := t.parents[route]; ok {
		return parent, true
	}
	res := t.Resolve(route)
	if res.Kind == ResolutionDynamic && res.CollectionID != "" {
		return res.Domain.BaseRoute(), true
	}
	return "", false
}

// IsLeaf reports whether a route is a leaf room: its back panel carries real
// content rather than further structure. Dynamic domain routes are always
// leaves; routes without a room config default to leaf as well.
func (t *Table) IsLeaf(route string) bool {
	room, ok := t.rooms[route]
	if !ok {
		return true
	}
	if room.Layout == LayoutFourPanel {
		return false
	}
	switch room.Back.Kind {
	case KindEmpty, KindSectionTitle, KindPhotoSpace:
		return false
	default:
		return true
	}
}

// Validate checks the table invariants: every navigation target referenced
// by a panel must resolve, and every declared parent must resolve.
func (t *Table) Validate() error {
	for route, room := range t.rooms {
		for _, panel := range room.Panels() {
			if panel.Kind != KindNavigation {
				continue
			}
			if !t.Resolves(panel.Target) {
				return fmt.Errorf("room %q: navigation target %q does not resolve", route, panel.Target)
			}
		}
	}
	for route, parent := range t.parents {
		if !t.Resolves(parent) {
			return fmt.Errorf("route %q: parent %q does not resolve", route, parent)
		}
	}
	return nil
}

// NotFoundRoom is the terminal render for unknown routes: a fixed room with
// a link back to the entrance. It is not part of the route table.
func NotFoundRoom() Room {
	return Room{
		Title:  "Room Not Found",
		Layout: LayoutThreePanel,
		Back: Panel{
			Kind: KindArtwork,
			Text: "There is no room here.",
		},
		Left: Panel{
			Kind:            KindNavigation,
			Target:          "",
			Label:           "Entrance Hall",
			ActivationLabel: "Return to the entrance",
		},
		Right: Panel{Kind: KindEmpty},
	}
}

// DefaultTable builds the museum's route table. The eight content domain
// routes are deliberately absent: they resolve dynamically.
func DefaultTable() *Table {
	rooms := map[string]Room{
		"": {
			Title:  "Entrance Hall",
			Layout: LayoutThreePanel,
			Back:   Panel{Kind: KindPhotoSpace, Feature: "entrance"},
			Left: Panel{
				Kind:            KindNavigation,
				Target:          "/about",
				Label:           "About",
				ActivationLabel: "Meet the curator",
			},
			Right: Panel{
				Kind:            KindNavigation,
				Target:          "/works",
				Label:           "The Works",
				ActivationLabel: "Enter the works",
			},
		},
		"/about": {
			Title:  "About",
			Layout: LayoutThreePanel,
			Back: Panel{
				Kind: KindArtwork,
				Text: "Photographs, writing, music and projects, hung on the walls of one small museum.",
			},
			Left: Panel{
				Kind:            KindNavigation,
				Target:          "",
				Label:           "Entrance Hall",
				ActivationLabel: "Back to the entrance",
			},
			Right: Panel{
				Kind:            KindNavigation,
				Target:          "/sitemap",
				Label:           "Sitemap",
				ActivationLabel: "See the floor plan",
			},
		},
		"/works": {
			Title:  "The Works",
			Layout: LayoutThreePanel,
			Back:   Panel{Kind: KindSectionTitle, Text: "The Works"},
			Left: Panel{
				Kind:            KindNavigation,
				Target:          "/works/personal",
				Label:           "Personal",
				ActivationLabel: "Things I made",
			},
			Right: Panel{
				Kind:            KindNavigation,
				Target:          "/works/curated",
				Label:           "Curated",
				ActivationLabel: "Things I recommend",
			},
		},
		"/works/personal": {
			Title:   "Personal Works",
			Layout:  LayoutFourPanel,
			Heading: "Personal",
			Leftmost: Panel{
				Kind:            KindNavigation,
				Target:          domain.TypePhoto.BaseRoute(),
				Label:           "Photography",
				ActivationLabel: "Enter the photography room",
			},
			Leftmiddle: Panel{
				Kind:            KindNavigation,
				Target:          domain.TypeWriting.BaseRoute(),
				Label:           "Writing",
				ActivationLabel: "Enter the writing room",
			},
			Rightmiddle: Panel{
				Kind:            KindNavigation,
				Target:          domain.TypeTrack.BaseRoute(),
				Label:           "Music",
				ActivationLabel: "Enter the music room",
			},
			Rightmost: Panel{
				Kind:            KindNavigation,
				Target:          domain.TypeProject.BaseRoute(),
				Label:           "Projects",
				ActivationLabel: "Enter the projects room",
			},
		},
		"/works/curated": {
			Title:   "Curated Rooms",
			Layout:  LayoutFourPanel,
			Heading: "Curated",
			Leftmost: Panel{
				Kind:            KindNavigation,
				Target:          domain.TypeCuratedWriting.BaseRoute(),
				Label:           "Writing",
				ActivationLabel: "Books and articles worth your time",
			},
			Leftmiddle: Panel{
				Kind:            KindNavigation,
				Target:          domain.TypeCuratedFilm.BaseRoute(),
				Label:           "Cinema",
				ActivationLabel: "Films worth your time",
			},
			Rightmiddle: Panel{
				Kind:            KindNavigation,
				Target:          domain.TypeCuratedAlbum.BaseRoute(),
				Label:           "Music",
				ActivationLabel: "Albums worth your time",
			},
			Rightmost: Panel{
				Kind:            KindNavigation,
				Target:          domain.TypeCuratedMisc.BaseRoute(),
				Label:           "Miscellany",
				ActivationLabel: "Everything else",
			},
		},
		"/reading-room": {
			Title:  "Reading Room",
			Layout: LayoutThreePanel,
			Back:   Panel{Kind: KindBlogList, Domain: domain.TypeWriting},
			Left: Panel{
				Kind:            KindNavigation,
				Target:          "/works/personal",
				Label:           "Personal Works",
				ActivationLabel: "Back to personal works",
			},
			Right: Panel{Kind: KindGallery, Domain: domain.TypePhoto},
		},
		"/sitemap": {
			Title:  "Sitemap",
			Layout: LayoutThreePanel,
			Back:   Panel{Kind: KindSectionTitle, Text: "Floor Plan"},
			Left: Panel{
				Kind:            KindNavigation,
				Target:          "",
				Label:           "Entrance Hall",
				ActivationLabel: "Back to the entrance",
			},
			Right: Panel{Kind: KindEmpty},
		},
	}

	parents := map[string]string{
		"/about":          "",
		"/works":          "",
		"/sitemap":        "",
		"/reading-room":   "/works",
		"/works/personal": "/works",
		"/works/curated":  "/works",
	}
	for _, ct := range domain.AllContentTypes() {
		switch ct {
		case domain.TypePhoto, domain.TypeWriting, domain.TypeTrack, domain.TypeProject:
			parents[ct.BaseRoute()] = "/works/personal"
		default:
			parents[ct.BaseRoute()] = "/works/curated"
		}
	}

	return NewTable(rooms, parents)
}
