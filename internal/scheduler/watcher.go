package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MrSnakeDoc/museum/internal/logger"
	"github.com/MrSnakeDoc/museum/internal/utils"
)

// watchDebounce coalesces editor write bursts into one reload.
const watchDebounce = 500 * time.Millisecond

// Watcher watches the content directory and feeds the reloader's manual
// trigger when files change. It is optional; the periodic reload works
// without it.
type Watcher struct {
	dir     string
	trigger chan struct{}
	logger  logger.Logger
	stopCh  chan struct{}
}

// NewWatcher creates a content directory watcher.
func NewWatcher(dir string, trigger chan struct{}, log logger.Logger) *Watcher {
	return &Watcher{
		dir:     dir,
		trigger: trigger,
		logger:  log,
		stopCh:  make(chan struct{}),
	}
}

// Start begins watching the content directory and its immediate
// subdirectories.
func (w *Watcher) Start(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create content watcher: %w", err)
	}

	if err := fw.Add(w.dir); err != nil {
		utils.Close(fw)
		return fmt.Errorf("failed to watch content dir: %w", err)
	}
	// One level of subdirectories covers the markdown and featured dirs.
	if dirEntries, err := os.ReadDir(w.dir); err == nil {
		for _, de := range dirEntries {
			if de.IsDir() {
				if err := fw.Add(filepath.Join(w.dir, de.Name())); err != nil {
					w.logger.Warn("failed to watch content subdir",
						logger.String("dir", de.Name()),
						logger.Error(err))
				}
			}
		}
	}

	w.logger.Info("watching content directory",
		logger.String("dir", w.dir))

	go func() {
		defer func() {
			if err := fw.Close(); err != nil {
				w.logger.Warn("failed to close content watcher",
					logger.Error(err))
			}
		}()

		var debounce *time.Timer
		var debounceC <-chan time.Time

		for {
			select {
			case event, ok := <-fw.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				w.logger.Debug("content change detected",
					logger.String("file", event.Name),
					logger.String("op", event.Op.String()))
				if debounce == nil {
					debounce = time.NewTimer(watchDebounce)
					debounceC = debounce.C
				} else {
					debounce.Reset(watchDebounce)
				}

			case <-debounceC:
				debounce = nil
				debounceC = nil
				select {
				case w.trigger <- struct{}{}:
				default:
					// A reload is already pending.
				}

			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				w.logger.Warn("content watcher error",
					logger.Error(err))

			case <-w.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	close(w.stopCh)
}
