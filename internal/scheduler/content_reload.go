package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/museum/internal/content"
	"github.com/MrSnakeDoc/museum/internal/logger"
	"github.com/MrSnakeDoc/museum/internal/search"
	redisstore "github.com/MrSnakeDoc/museum/internal/store/redis"
)

// ContentReloader handles periodic reloading of the content collections and
// rebuilds the search index after each load.
type ContentReloader struct {
	loader        *content.Loader
	mapper        *content.Mapper
	registry      *content.Registry
	index         *search.Index
	store         *redisstore.Store
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewContentReloader creates a new content reloader.
func NewContentReloader(
	loader *content.Loader,
	registry *content.Registry,
	index *search.Index,
	store *redisstore.Store,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *ContentReloader {
	return &ContentReloader{
		loader:        loader,
		mapper:        content.NewMapper(),
		registry:      registry,
		index:         index,
		store:         store,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start begins the periodic reload process. The initial load is synchronous
// and its failure is fatal: a museum with no manifest cannot open.
func (cr *ContentReloader) Start(ctx context.Context) error {
	if err := cr.Reload(ctx); err != nil {
		return fmt.Errorf("initial content load failed: %w", err)
	}

	ticker := time.NewTicker(cr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload content",
						logger.Error(err))
				}
			case <-cr.manualTrigger:
				cr.logger.Info("manual content reload triggered")
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload content",
						logger.Error(err))
				}
			case <-cr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader.
func (cr *ContentReloader) Stop() {
	close(cr.stopCh)
}

// Reload loads the collections from disk, updates the registry and rebuilds
// the search index. Per-collection failures degrade to empty collections;
// only a broken manifest makes Reload fail.
func (cr *ContentReloader) Reload(ctx context.Context) error {
	cr.logger.Info("reloading content collections",
		logger.String("dir", cr.loader.Dir()))

	raw, err := cr.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	for _, missing := range raw.Missing {
		cr.logger.Warn("collection unavailable, room will render empty",
			logger.String("collection", missing))
	}

	collections, problems := cr.mapper.MapAll(raw)
	for _, problem := range problems {
		cr.logger.Warn("skipped content record",
			logger.String("problem", problem))
	}

	cr.registry.Update(collections)
	indexed := cr.index.Build(cr.registry)

	cr.logger.Info("content loaded",
		logger.Int("entries", cr.registry.Count()),
		logger.Int("indexed", indexed))

	// Featured descriptors may have changed on disk, drop the cache (best
	// effort).
	if cr.store != nil {
		if err := cr.store.FlushFeatured(ctx); err != nil {
			cr.logger.Warn("failed to flush featured cache",
				logger.Error(err))
		}
	}

	return nil
}
