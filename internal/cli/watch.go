package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 250 * time.Millisecond

var watchedExtensions = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
}

// Watcher re-runs a callback when watched schema files change. Rapid
// event bursts are debounced so one editor save triggers one run.
type Watcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	debounce *debouncer
}

// NewWatcher creates a watcher. A non-positive debounce interval uses
// the default of 250ms.
func NewWatcher(logger *slog.Logger, debounce time.Duration) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("cli: create file watcher: %w", err)
	}

	return &Watcher{
		watcher:  fw,
		logger:   logger,
		debounce: newDebouncer(debounce),
	}, nil
}

// Watch blocks until ctx is done, invoking onChange after each settled
// burst of write or create events under paths. Directories are watched
// recursively.
func (w *Watcher) Watch(ctx context.Context, paths []string, onChange func()) error {
	for _, path := range paths {
		if err := w.add(path); err != nil {
			return err
		}
	}

	w.logger.Info("watching for changes", "paths", strings.Join(paths, ", "))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("cli: watcher event channel closed")
			}
			if !relevantEvent(event) {
				continue
			}
			w.logger.Debug("file event", "path", event.Name, "op", event.Op.String())
			w.debounce.trigger(onChange)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("cli: watcher error channel closed")
			}
			w.logger.Error("watch error", "error", err)
		}
	}
}

// Close releases the underlying file watcher and cancels any pending
// debounced run.
func (w *Watcher) Close() error {
	w.debounce.stop()
	return w.watcher.Close()
}

func (w *Watcher) add(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cli: watch %q: %w", path, err)
	}

	if !info.IsDir() {
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("cli: watch %q: %w", path, err)
		}
		return nil
	}

	return filepath.Walk(path, func(sub string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if sub != path && strings.HasPrefix(filepath.Base(sub), ".") {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(sub); err != nil {
			return fmt.Errorf("cli: watch %q: %w", sub, err)
		}
		w.logger.Debug("watching directory", "path", sub)
		return nil
	})
}

func relevantEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return false
	}
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}
	return watchedExtensions[strings.ToLower(filepath.Ext(event.Name))]
}

// debouncer collapses rapid triggers into one callback after a quiet
// period.
type debouncer struct {
	interval time.Duration
	mu       sync.Mutex
	timer    *time.Timer
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{interval: interval}
}

func (d *debouncer) trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, fn)
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
