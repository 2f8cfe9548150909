package redis

import (
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultFeaturedTTL is the default TTL for cached featured-image
	// resolutions (24 hours).
	DefaultFeaturedTTL = 24 * time.Hour
)

// Store handles Redis operations for the museum: theme preference, view
// counters and the featured-image cache. Every call is best effort from the
// caller's perspective; the in-memory registry remains the primary source.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}
