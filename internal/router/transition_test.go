package router

import "testing"

func TestDepth(t *testing.T) {
	tests := []struct {
		name  string
		route string
		want  int
	}{
		{name: "home", route: "", want: 0},
		{name: "root slash", route: "/", want: 0},
		{name: "one segment", route: "/about", want: 1},
		{name: "two segments", route: "/works/personal", want: 2},
		{name: "three segments", route: "/works/personal/photography", want: 3},
		{name: "trailing slash ignored", route: "/works/", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Depth(tt.route); got != tt.want {
				t.Errorf("Depth(%q) = %d, want %d", tt.route, got, tt.want)
			}
		})
	}
}

func TestViewClassFor(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		name      string
		current   string
		previous  string
		lastPanel ActivatedPanel
		want      ViewClass
	}{
		{
			name:      "deeper is forward",
			current:   "/works",
			previous:  "",
			lastPanel: ActivatedRight,
			want:      ViewForward,
		},
		{
			name:      "leaf entered from left wall",
			current:   "/works/personal/photography",
			previous:  "/works/personal",
			lastPanel: ActivatedLeft,
			want:      ViewLeft,
		},
		{
			name:      "leaf entered from right wall",
			current:   "/works/curated/misc",
			previous:  "/works/curated",
			lastPanel: ActivatedRight,
			want:      ViewRight,
		},
		{
			name:      "leaf entered head-on is forward",
			current:   "/works/personal/photography",
			previous:  "/works/personal",
			lastPanel: ActivatedFront,
			want:      ViewForward,
		},
		{
			name:      "about never slides",
			current:   "/about",
			previous:  "",
			lastPanel: ActivatedLeft,
			want:      ViewForward,
		},
		{
			name:      "back out is default",
			current:   "/works",
			previous:  "/works/personal",
			lastPanel: ActivatedNone,
			want:      ViewDefault,
		},
		{
			name:      "same depth is default",
			current:   "/sitemap",
			previous:  "/about",
			lastPanel: ActivatedNone,
			want:      ViewDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := viewClassFor(table, tt.current, tt.previous, tt.lastPanel)
			if got != tt.want {
				t.Errorf("viewClassFor(%q <- %q, %s) = %q, want %q",
					tt.current, tt.previous, tt.lastPanel, got, tt.want)
			}
		})
	}
}

func TestPlanFor(t *testing.T) {
	forward := planFor(ViewForward)
	if forward.Stages != 2 || forward.StageDelay != ForwardStageDelay {
		t.Errorf("planFor(forward) = %+v, want two stages with %v delay", forward, ForwardStageDelay)
	}

	for _, class := range []ViewClass{ViewDefault, ViewLeft, ViewRight} {
		plan := planFor(class)
		if plan.Stages != 1 || plan.StageDelay != 0 {
			t.Errorf("planFor(%q) = %+v, want single immediate stage", class, plan)
		}
	}
}
