package lint

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 100 * time.Millisecond

// Watcher monitors a directory tree and reports source files that change.
type Watcher struct {
	root     string
	suffix   string
	logger   *slog.Logger
	debounce time.Duration
	Ready    chan struct{}

	newWatcher func() (*fsnotify.Watcher, error)

	mu      sync.Mutex
	pending map[string]*time.Timer
}

// NewWatcher creates a Watcher for files under root ending with suffix.
func NewWatcher(root, suffix string, logger *slog.Logger) *Watcher {
	return &Watcher{
		root:       root,
		suffix:     suffix,
		logger:     logger.With("component", "watcher"),
		debounce:   defaultDebounce,
		Ready:      make(chan struct{}),
		newWatcher: fsnotify.NewWatcher,
		pending:    make(map[string]*time.Timer),
	}
}

// Watch calls callback with the path of each matching file that is written or
// created. Bursts of events for the same file are debounced into one call.
// It blocks until ctx is cancelled.
func (w *Watcher) Watch(ctx context.Context, callback func(path string)) error {
	watcher, err := w.newWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	defer w.stopPending()

	if err := w.addRecursive(watcher, w.root); err != nil {
		return err
	}

	w.logger.Info("Watching for changes", "root", w.root)
	if w.Ready != nil {
		close(w.Ready)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Watcher error", "error", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if path := w.handleEvent(watcher, event); path != "" {
				w.schedule(ctx, path, callback)
			}
		}
	}
}

// handleEvent adds new directories to the watcher and returns the path of a
// changed source file, or "" if the event is not relevant.
func (w *Watcher) handleEvent(watcher *fsnotify.Watcher, event fsnotify.Event) string {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return ""
	}

	if event.Has(fsnotify.Create) {
		info, err := os.Stat(event.Name)
		if err == nil && info.IsDir() {
			if err := w.addRecursive(watcher, event.Name); err != nil {
				w.logger.Error("Failed to watch new directory", "path", event.Name, "error", err)
			}
			return ""
		}
	}

	if !strings.HasSuffix(filepath.Base(event.Name), w.suffix) {
		return ""
	}
	return event.Name
}

func (w *Watcher) schedule(ctx context.Context, path string, callback func(string)) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.pending[path]; ok {
		t.Stop()
	}
	w.pending[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()

		if ctx.Err() == nil {
			callback(path)
		}
	})
}

func (w *Watcher) stopPending() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for p, t := range w.pending {
		t.Stop()
		delete(w.pending, p)
	}
}

// addRecursive adds the given path and all its subdirectories to the watcher.
func (w *Watcher) addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
