package redis

import (
	"testing"

	"github.com/MrSnakeDoc/museum/internal/domain"
)

func TestViewsKey(t *testing.T) {
	got := ViewsKey(domain.TypePhoto, "pier")
	want := "museum:views:photo:pier"
	if got != want {
		t.Errorf("ViewsKey() = %q, want %q", got, want)
	}
}

func TestSplitViewsKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantCT  domain.ContentType
		wantID  string
		wantErr bool
	}{
		{
			name:   "simple",
			key:    "museum:views:photo:pier",
			wantCT: domain.TypePhoto,
			wantID: "pier",
		},
		{
			name:   "id with colons",
			key:    "museum:views:track:album:side-b:3",
			wantCT: domain.TypeTrack,
			wantID: "album:side-b:3",
		},
		{
			name:   "hyphenated type",
			key:    "museum:views:curated-film:stalker",
			wantCT: domain.TypeCuratedFilm,
			wantID: "stalker",
		},
		{name: "wrong prefix", key: "museum:theme", wantErr: true},
		{name: "missing id", key: "museum:views:photo", wantErr: true},
		{name: "empty type", key: "museum:views::pier", wantErr: true},
		{name: "empty", key: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct, id, err := SplitViewsKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SplitViewsKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if ct != tt.wantCT || id != tt.wantID {
				t.Errorf("SplitViewsKey(%q) = (%s, %s), want (%s, %s)", tt.key, ct, id, tt.wantCT, tt.wantID)
			}
		})
	}
}

func TestFeaturedKey(t *testing.T) {
	if got := FeaturedKey("entrance"); got != "museum:featured:entrance" {
		t.Errorf("FeaturedKey() = %q, want museum:featured:entrance", got)
	}
}
