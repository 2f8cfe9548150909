package redis

import (
	"fmt"
	"strings"

	"github.com/MrSnakeDoc/museum/internal/domain"
)

const (
	// KeyTheme stores the visitor's theme preference ('light'|'dark').
	KeyTheme = "museum:theme"
	// KeyPrefixViews is the prefix for per-entry view counters.
	KeyPrefixViews = "museum:views:"
	// KeyPrefixFeatured is the prefix for cached featured-image resolutions.
	KeyPrefixFeatured = "museum:featured:"
)

// ViewsKey returns the Redis key for an entry's view counter.
func ViewsKey(ct domain.ContentType, id string) string {
	return fmt.Sprintf("%s%s:%s", KeyPrefixViews, ct, id)
}

// FeaturedKey returns the Redis key for a cached featured-image descriptor.
func FeaturedKey(feature string) string {
	return KeyPrefixFeatured + feature
}

// SplitViewsKey extracts (type, id) from a views key. The id may itself
// contain colons; only the first separator after the type is structural.
func SplitViewsKey(key string) (domain.ContentType, string, error) {
	rest, ok := strings.CutPrefix(key, KeyPrefixViews)
	if !ok || rest == "" {
		return "", "", fmt.Errorf("invalid views key: %s", key)
	}
	parts := strings.SplitN(rest, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid views key: %s", key)
	}
	return domain.ContentType(parts[0]), parts[1], nil
}
