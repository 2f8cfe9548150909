package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/museum/internal/content"
)

// CacheFeatured stores a featured-image resolution so photo-space panels do
// not re-read the descriptor file on every render.
func (s *Store) CacheFeatured(ctx context.Context, feature string, img content.FeaturedImage, ttl time.Duration) error {
	data, err := json.Marshal(img)
	if err != nil {
		return fmt.Errorf("failed to marshal featured image: %w", err)
	}
	if err := s.client.Set(ctx, FeaturedKey(feature), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache featured image: %w", err)
	}
	return nil
}

// GetCachedFeatured retrieves a cached featured-image resolution. A cache
// miss returns ok=false with no error.
func (s *Store) GetCachedFeatured(ctx context.Context, feature string) (content.FeaturedImage, bool, error) {
	data, err := s.client.Get(ctx, FeaturedKey(feature)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return content.FeaturedImage{}, false, nil
		}
		return content.FeaturedImage{}, false, fmt.Errorf("failed to get cached featured image: %w", err)
	}

	var img content.FeaturedImage
	if err := json.Unmarshal(data, &img); err != nil {
		return content.FeaturedImage{}, false, fmt.Errorf("failed to unmarshal cached featured image: %w", err)
	}
	return img, true, nil
}

// FlushFeatured removes all cached featured-image resolutions, used after a
// content reload.
func (s *Store) FlushFeatured(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, KeyPrefixFeatured+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete featured cache key: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to flush featured cache: %w", err)
	}
	return nil
}
