package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"csf2det/internal/logging"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce collapses the burst of events an editor save produces.
const DefaultDebounce = 200 * time.Millisecond

// Watcher calls OnChange whenever the job file is written or replaced.
// The parent directory is watched rather than the file itself so editors
// that save by rename keep triggering events.
type Watcher struct {
	Path     string
	Debounce time.Duration
	OnChange func(ctx context.Context) error
}

// Run blocks until ctx is cancelled or the watcher fails. Errors returned
// by OnChange are logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context) error {
	log := logging.Get(logging.CategoryBatch)

	abs, err := filepath.Abs(w.Path)
	if err != nil {
		return fmt.Errorf("failed to resolve job file: %w", err)
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	log.Info("watching job file", zap.String("path", abs))

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("watcher stopped")
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			log.Debug("job file event", zap.String("op", event.Op.String()))
			timer.Reset(debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Error("watcher error", zap.Error(err))

		case <-timer.C:
			if err := w.OnChange(ctx); err != nil {
				log.Warn("re-run failed", zap.Error(err))
			}
		}
	}
}
