package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	// DefaultTheme is returned when no preference has been persisted yet.
	DefaultTheme = ThemeLight
)

// ValidTheme reports whether s is a persistable theme value.
func ValidTheme(s string) bool {
	return s == ThemeLight || s == ThemeDark
}

// GetTheme retrieves the persisted theme preference, falling back to the
// default when unset.
func (s *Store) GetTheme(ctx context.Context) (string, error) {
	theme, err := s.client.Get(ctx, KeyTheme).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return DefaultTheme, nil
		}
		return "", fmt.Errorf("failed to get theme: %w", err)
	}
	if !ValidTheme(theme) {
		// A corrupted value degrades to the default rather than failing.
		return DefaultTheme, nil
	}
	return theme, nil
}

// SetTheme persists the theme preference. The key has no TTL: the
// preference survives until overwritten.
func (s *Store) SetTheme(ctx context.Context, theme string) error {
	if !ValidTheme(theme) {
		return fmt.Errorf("invalid theme %q: must be %q or %q", theme, ThemeLight, ThemeDark)
	}
	if err := s.client.Set(ctx, KeyTheme, theme, 0).Err(); err != nil {
		return fmt.Errorf("failed to set theme: %w", err)
	}
	return nil
}
