package resolver

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"sync"
	"time"

	"go.trai.ch/stanza/internal/core/domain"
	"go.trai.ch/stanza/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// LockCache answers installed/transitive queries for one project, reloading
// the lock artifact only when its last-write time moves forward.
//
// Staleness rule: the artifact is stale when its mtime is strictly greater
// than the last-recorded time. On staleness the cached transitive data is
// cleared in full, never per-entry. Installed results always derive from the
// live declarations passed into the query, never from the artifact.
type LockCache struct {
	loader ports.LockArtifactLoader
	logger ports.Logger
	merger *Merger

	mu        sync.RWMutex
	stamped   bool
	lastWrite time.Time
	entries   transitiveIndex

	// group collapses concurrent refreshes: at most one in-flight reload per
	// artifact path, with waiters sharing its result.
	group singleflight.Group
}

// NewLockCache creates a cache for one project.
func NewLockCache(loader ports.LockArtifactLoader, merger *Merger, logger ports.Logger) *LockCache {
	return &LockCache{
		loader: loader,
		logger: logger,
		merger: merger,
	}
}

// InstalledAndTransitive computes the installed and transitive package lists
// for the given direct declarations and lock artifact path.
//
// An absent artifact yields declarations-only installed packages and empty
// transitive data without touching the cache. An unreadable or malformed
// artifact is recoverable: it is logged and the query proceeds with empty
// transitive data.
func (c *LockCache) InstalledAndTransitive(
	ctx context.Context,
	decls []domain.DependencyDeclaration,
	artifactPath string,
) (installed, transitive []domain.PackageIdentity, err error) {
	installed = c.merger.MergeInstalled(decls)

	info, statErr := os.Stat(artifactPath)
	if statErr != nil {
		if errors.Is(statErr, fs.ErrNotExist) {
			return installed, nil, nil
		}
		c.logger.Warn(zerr.Wrap(statErr, "cannot stat lock artifact").Error())
		return installed, nil, nil
	}

	if c.isStale(info.ModTime()) {
		if refreshErr := c.refresh(ctx, artifactPath, info.ModTime()); refreshErr != nil {
			return installed, nil, refreshErr
		}
	}

	c.mu.RLock()
	entries := c.entries
	c.mu.RUnlock()

	return installed, c.merger.MergeTransitive(entries, installed), nil
}

// Invalidate discards all cached transitive data, forcing a reload on the
// next query. Used by watch mode when the artifact changes on disk.
func (c *LockCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stamped = false
	c.lastWrite = time.Time{}
	c.entries = nil
}

func (c *LockCache) isStale(modTime time.Time) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.stamped || modTime.After(c.lastWrite)
}

// refresh reloads the artifact and swaps the cache contents. The clear, the
// timestamp record and the snapshot swap happen under one lock so no reader
// ever observes a partially cleared cache. Cancellation aborts the load
// before any shared state is touched; the bookkeeping itself is not abortable.
func (c *LockCache) refresh(ctx context.Context, artifactPath string, modTime time.Time) error {
	_, err, _ := c.group.Do(artifactPath, func() (any, error) {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		snapshot, loadErr := c.loader.Load(ctx, artifactPath)
		if loadErr != nil {
			if errors.Is(loadErr, domain.ErrLockArtifactUnreadable) {
				// Recoverable: degrade to empty transitive data.
				c.logger.Warn(loadErr.Error())
				snapshot = nil
			} else {
				return nil, loadErr
			}
		}

		// Swap in bulk: the clear, the timestamp record and the new entries
		// land under one critical section.
		c.mu.Lock()
		c.entries = c.merger.IndexTransitive(snapshot)
		c.lastWrite = modTime
		c.stamped = true
		c.mu.Unlock()
		return nil, nil
	})
	return err
}
