package ports

import "context"

// WatchEvent describes a change to a watched file.
type WatchEvent struct {
	// Path is the changed file path.
	Path string
}

// Watcher watches a fixed set of files for changes.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the given files. Events stop when ctx is done.
	Start(ctx context.Context, paths []string) error

	// Events returns the channel of debounced change events.
	Events() <-chan WatchEvent

	// Close releases the underlying watcher resources.
	Close() error
}
