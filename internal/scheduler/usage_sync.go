package scheduler

import (
	"context"

	"github.com/MrSnakeDoc/museum/internal/content"
	"github.com/MrSnakeDoc/museum/internal/logger"
	redisstore "github.com/MrSnakeDoc/museum/internal/store/redis"
)

// UsageSyncer warms the registry's view counters from Redis on startup so a
// restart does not reset them to zero.
type UsageSyncer struct {
	store    *redisstore.Store
	registry *content.Registry
	logger   logger.Logger
}

// NewUsageSyncer creates a new usage syncer.
func NewUsageSyncer(
	store *redisstore.Store,
	registry *content.Registry,
	log logger.Logger,
) *UsageSyncer {
	return &UsageSyncer{
		store:    store,
		registry: registry,
		logger:   log,
	}
}

// Sync loads the persisted view counters into the registry.
func (us *UsageSyncer) Sync(ctx context.Context) error {
	us.logger.Info("syncing view counters from redis")

	views, err := us.store.AllViews(ctx)
	if err != nil {
		return err
	}

	if len(views) == 0 {
		us.logger.Info("no view counters found in redis")
		return nil
	}

	us.registry.SetViews(views)

	us.logger.Info("synced view counters from redis",
		logger.Int("count", len(views)))

	return nil
}
