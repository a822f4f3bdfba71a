// Package watcher implements file watching for watch-mode restores.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/stanza/internal/core/ports"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 16

// Watcher watches a fixed set of files using fsnotify. Because editors often
// replace files by rename, the parent directories are watched and raw events
// are filtered down to the requested paths.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	logger    ports.Logger
	watched   map[string]struct{}
	events    chan ports.WatchEvent
}

// NewWatcher creates a new file watcher.
func NewWatcher(logger ports.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		logger:    logger,
		watched:   make(map[string]struct{}),
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}
	w.debouncer = NewDebouncer(DefaultDebounceWindow, w.emit)
	return w, nil
}

// Start begins watching the given files. Event processing stops when ctx is
// done.
func (w *Watcher) Start(ctx context.Context, paths []string) error {
	dirs := make(map[string]struct{})
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		w.watched[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if err := w.fsWatcher.Add(dir); err != nil {
			return err
		}
	}

	go w.processEvents(ctx)

	return nil
}

// Events returns the channel of debounced change events.
func (w *Watcher) Events() <-chan ports.WatchEvent {
	return w.events
}

// Close releases the underlying watcher resources.
func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}

// processEvents filters raw fsnotify events down to the watched files and
// feeds survivors through the debouncer.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.debouncer.Add(event.Name)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.Warn("watcher: file system error: " + err.Error())
			}
		}
	}
}

// relevant reports whether a raw event concerns one of the watched files and
// represents a content change.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	if _, ok := w.watched[abs]; !ok {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
}

// emit publishes each debounced path on the event channel. Paths that vanished
// between the raw event and the debounce window still count: a removed lock
// artifact is a change the caller must see.
func (w *Watcher) emit(paths []string) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil && !os.IsNotExist(err) {
			continue
		}
		select {
		case w.events <- ports.WatchEvent{Path: path}:
		default:
			if w.logger != nil {
				w.logger.Warn("watcher: dropping event for " + path)
			}
		}
	}
}

// DefaultDebounceWindow is the default time window for coalescing file events.
const DefaultDebounceWindow = 200 * time.Millisecond
