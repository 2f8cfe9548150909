package router

import (
	"strings"
	"time"
)

// ViewClass is the CSS transition class computed for a navigation.
type ViewClass string

const (
	ViewDefault ViewClass = ""
	ViewForward ViewClass = "view-forward"
	ViewLeft    ViewClass = "view-left"
	ViewRight   ViewClass = "view-right"
)

// ForwardStageDelay separates stage one (move forward) from stage two
// (settle and paint) of the forward transition.
const ForwardStageDelay = 350 * time.Millisecond

// TransitionPlan describes how many render stages a navigation needs and the
// delay before the second stage. It is returned as data so clients own the
// timers; an interrupted transition is discarded by generation, not by
// cancelling timers here.
type TransitionPlan struct {
	Stages     int           `json:"stages"`
	StageDelay time.Duration `json:"stage_delay"`
}

func planFor(class ViewClass) TransitionPlan {
	if class == ViewForward {
		return TransitionPlan{Stages: 2, StageDelay: ForwardStageDelay}
	}
	return TransitionPlan{Stages: 1}
}

// Depth counts the '/'-separated segments of a route. The home route is 0.
func Depth(route string) int {
	route = strings.Trim(route, "/")
	if route == "" {
		return 0
	}
	return strings.Count(route, "/") + 1
}

// viewClassFor applies the transition rules:
//   - view-left / view-right when entering a leaf room sideways from the
//     matching wall (never for /about)
//   - forward when navigating deeper into the museum
//   - default otherwise
func viewClassFor(table *Table, current, previous string, lastPanel ActivatedPanel) ViewClass {
	if current != "/about" && table.IsLeaf(current) {
		switch lastPanel {
		case ActivatedLeft:
			return ViewLeft
		case ActivatedRight:
			return ViewRight
		}
	}
	if Depth(current) > Depth(previous) {
		return ViewForward
	}
	return ViewDefault
}
