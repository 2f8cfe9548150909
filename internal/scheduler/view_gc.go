package scheduler

import (
	"context"
	"strings"
	"time"

	"github.com/MrSnakeDoc/museum/internal/content"
	"github.com/MrSnakeDoc/museum/internal/domain"
	"github.com/MrSnakeDoc/museum/internal/logger"
	redisstore "github.com/MrSnakeDoc/museum/internal/store/redis"
)

// ViewGC prunes persisted view counters whose entries no longer exist in
// any loaded collection. Counters orphaned by a content reload would
// otherwise accumulate forever.
type ViewGC struct {
	store    *redisstore.Store
	registry *content.Registry
	logger   logger.Logger
	interval time.Duration
	stopCh   chan struct{}
}

// NewViewGC creates a new view counter garbage collector.
func NewViewGC(
	store *redisstore.Store,
	registry *content.Registry,
	log logger.Logger,
	interval time.Duration,
) *ViewGC {
	return &ViewGC{
		store:    store,
		registry: registry,
		logger:   log,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic collection process.
func (gc *ViewGC) Start(ctx context.Context) error {
	// Run immediately on start
	if err := gc.Collect(ctx); err != nil {
		gc.logger.Warn("initial view counter collection failed",
			logger.Error(err))
	}

	ticker := time.NewTicker(gc.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := gc.Collect(ctx); err != nil {
					gc.logger.Error("view counter collection failed",
						logger.Error(err))
				}
			case <-gc.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the garbage collector.
func (gc *ViewGC) Stop() {
	close(gc.stopCh)
}

// Collect removes counters for entries that are gone from the registry.
func (gc *ViewGC) Collect(ctx context.Context) error {
	gc.logger.Debug("running view counter garbage collection")

	views, err := gc.store.AllViews(ctx)
	if err != nil {
		return err
	}

	deleted := 0
	for key := range views {
		parts := strings.SplitN(key, ":", 2)
		if len(parts) != 2 {
			continue
		}
		ct := domain.ContentType(parts[0])
		id := parts[1]

		if ct.Valid() && gc.registry.Has(ct, id) {
			continue
		}

		if err := gc.store.DeleteViews(ctx, ct, id); err != nil {
			gc.logger.Warn("failed to delete orphaned view counter",
				logger.String("key", key),
				logger.Error(err))
			continue
		}

		gc.logger.Info("garbage collected orphaned view counter",
			logger.String("type", string(ct)),
			logger.String("id", id))
		deleted++
	}

	if deleted > 0 {
		gc.logger.Info("view counter collection completed",
			logger.Int("deleted", deleted))
	}

	return nil
}
