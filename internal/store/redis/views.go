package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/museum/internal/domain"
)

// IncrementViews increments the persisted view counter for an entry and
// returns the new count.
func (s *Store) IncrementViews(ctx context.Context, ct domain.ContentType, id string) (int64, error) {
	count, err := s.client.Incr(ctx, ViewsKey(ct, id)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment views: %w", err)
	}
	return count, nil
}

// GetViews retrieves the persisted view counter for an entry; unset is zero.
func (s *Store) GetViews(ctx context.Context, ct domain.ContentType, id string) (int64, error) {
	count, err := s.client.Get(ctx, ViewsKey(ct, id)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get views: %w", err)
	}
	return count, nil
}

// AllViews scans every view counter and returns them keyed by
// "<type>:<id>".
func (s *Store) AllViews(ctx context.Context) (map[string]int64, error) {
	views := make(map[string]int64)

	iter := s.client.Scan(ctx, 0, KeyPrefixViews+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		ct, id, err := SplitViewsKey(key)
		if err != nil {
			continue
		}
		count, err := s.client.Get(ctx, key).Int64()
		if err != nil {
			continue
		}
		views[string(ct)+":"+id] = count
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan view counters: %w", err)
	}

	return views, nil
}

// DeleteViews removes the persisted view counter for an entry.
func (s *Store) DeleteViews(ctx context.Context, ct domain.ContentType, id string) error {
	if err := s.client.Del(ctx, ViewsKey(ct, id)).Err(); err != nil {
		return fmt.Errorf("failed to delete view counter: %w", err)
	}
	return nil
}
