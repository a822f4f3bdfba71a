package resolver_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stanza/internal/adapters/framework"
	"go.trai.ch/stanza/internal/core/domain"
	"go.trai.ch/stanza/internal/core/ports/mocks"
	"go.trai.ch/stanza/internal/engine/resolver"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func newCache(t *testing.T) (*resolver.LockCache, *mocks.MockLockArtifactLoader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLockArtifactLoader(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	merger := resolver.NewMerger(framework.NewComparer())
	return resolver.NewLockCache(loader, merger, logger), loader, logger
}

func writeArtifact(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "stanza.lock.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))
	return path
}

func sampleSnapshot() *domain.LockSnapshot {
	return &domain.LockSnapshot{
		Version: 1,
		Targets: []domain.LockTarget{
			{
				Framework: "net8.0",
				Edges: []domain.LockEdge{
					{ID: "TransitiveA", Version: "1.0.0", Type: domain.EdgeTypeTransitive},
				},
			},
		},
	}
}

func TestLockCache_AbsentArtifact(t *testing.T) {
	cache, loader, _ := newCache(t)
	loader.EXPECT().Load(gomock.Any(), gomock.Any()).Times(0)

	decls := []domain.DependencyDeclaration{
		{ID: "PackageA", Range: parseRange(t, "1.0.0"), Framework: parseFramework(t, "net8.0")},
	}

	installed, transitive, err := cache.InstalledAndTransitive(
		context.Background(), decls, filepath.Join(t.TempDir(), "missing.lock.json"))

	require.NoError(t, err)
	require.Len(t, installed, 1)
	assert.Equal(t, "PackageA", installed[0].ID)
	assert.Empty(t, transitive)
}

func TestLockCache_LoadsOncePerWrite(t *testing.T) {
	cache, loader, _ := newCache(t)
	path := writeArtifact(t, t.TempDir())

	loader.EXPECT().Load(gomock.Any(), path).Return(sampleSnapshot(), nil).Times(1)

	for range 3 {
		_, transitive, err := cache.InstalledAndTransitive(context.Background(), nil, path)
		require.NoError(t, err)
		require.Len(t, transitive, 1)
		assert.Equal(t, "TransitiveA", transitive[0].ID)
	}
}

func TestLockCache_ReloadsOnNewerWrite(t *testing.T) {
	cache, loader, _ := newCache(t)
	path := writeArtifact(t, t.TempDir())

	loader.EXPECT().Load(gomock.Any(), path).Return(sampleSnapshot(), nil).Times(2)

	_, _, err := cache.InstalledAndTransitive(context.Background(), nil, path)
	require.NoError(t, err)

	// Push the mtime forward so the artifact counts as rewritten.
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	_, _, err = cache.InstalledAndTransitive(context.Background(), nil, path)
	require.NoError(t, err)
}

func TestLockCache_SameMtimeSkipsReload(t *testing.T) {
	cache, loader, _ := newCache(t)
	path := writeArtifact(t, t.TempDir())

	stamp := time.Now().Add(-time.Minute)
	require.NoError(t, os.Chtimes(path, stamp, stamp))

	loader.EXPECT().Load(gomock.Any(), path).Return(sampleSnapshot(), nil).Times(1)

	_, _, err := cache.InstalledAndTransitive(context.Background(), nil, path)
	require.NoError(t, err)

	// Rewrite content but keep the recorded mtime: no reload.
	require.NoError(t, os.WriteFile(path, []byte(`{"version":2}`), 0o600))
	require.NoError(t, os.Chtimes(path, stamp, stamp))

	_, transitive, err := cache.InstalledAndTransitive(context.Background(), nil, path)
	require.NoError(t, err)
	require.Len(t, transitive, 1)
}

func TestLockCache_MalformedArtifactDegrades(t *testing.T) {
	cache, loader, logger := newCache(t)
	path := writeArtifact(t, t.TempDir())

	loadErr := zerr.Wrap(domain.ErrLockArtifactUnreadable, "unexpected end of JSON input")
	loader.EXPECT().Load(gomock.Any(), path).Return(nil, loadErr).Times(1)
	logger.EXPECT().Warn(gomock.Any()).Times(1)

	decls := []domain.DependencyDeclaration{
		{ID: "PackageA", Range: parseRange(t, "1.0.0"), Framework: parseFramework(t, "net8.0")},
	}

	installed, transitive, err := cache.InstalledAndTransitive(context.Background(), decls, path)

	require.NoError(t, err)
	require.Len(t, installed, 1)
	assert.Empty(t, transitive)

	// The failed parse is remembered until the artifact is rewritten.
	_, transitive, err = cache.InstalledAndTransitive(context.Background(), decls, path)
	require.NoError(t, err)
	assert.Empty(t, transitive)
}

func TestLockCache_InvalidateForcesReload(t *testing.T) {
	cache, loader, _ := newCache(t)
	path := writeArtifact(t, t.TempDir())

	loader.EXPECT().Load(gomock.Any(), path).Return(sampleSnapshot(), nil).Times(2)

	_, _, err := cache.InstalledAndTransitive(context.Background(), nil, path)
	require.NoError(t, err)

	cache.Invalidate()

	_, transitive, err := cache.InstalledAndTransitive(context.Background(), nil, path)
	require.NoError(t, err)
	require.Len(t, transitive, 1)
}

func TestLockCache_CancelledContext(t *testing.T) {
	cache, loader, _ := newCache(t)
	path := writeArtifact(t, t.TempDir())

	loader.EXPECT().Load(gomock.Any(), gomock.Any()).Times(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := cache.InstalledAndTransitive(ctx, nil, path)
	require.ErrorIs(t, err, context.Canceled)
}

func TestLockCache_ConcurrentReadersDuringRefresh(t *testing.T) {
	cache, loader, _ := newCache(t)
	path := writeArtifact(t, t.TempDir())

	snapshot := &domain.LockSnapshot{
		Version: 1,
		Targets: []domain.LockTarget{
			{
				Framework: "net8.0",
				Edges: []domain.LockEdge{
					{ID: "TransitiveA", Version: "1.0.0", Type: domain.EdgeTypeTransitive},
					{ID: "TransitiveB", Version: "2.0.0", Type: domain.EdgeTypeTransitive},
					{ID: "TransitiveC", Version: "3.0.0", Type: domain.EdgeTypeTransitive},
				},
			},
		},
	}
	loader.EXPECT().Load(gomock.Any(), path).Return(snapshot, nil).AnyTimes()

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				_, transitive, err := cache.InstalledAndTransitive(context.Background(), nil, path)
				assert.NoError(t, err)
				// Readers racing a refresh see the prior set or the new one,
				// never a half-cleared cache.
				assert.Contains(t, []int{0, 3}, len(transitive))
			}
		}()
	}

	// Push the mtime forward repeatedly so staleness refreshes race the readers.
	stamp := time.Now()
	for i := range 5 {
		stamp = stamp.Add(time.Duration(i+1) * time.Second)
		require.NoError(t, os.Chtimes(path, stamp, stamp))
		time.Sleep(time.Millisecond)
	}

	wg.Wait()
}

func TestLockCache_InstalledAlwaysLive(t *testing.T) {
	cache, loader, _ := newCache(t)
	path := writeArtifact(t, t.TempDir())

	snapshot := &domain.LockSnapshot{
		Targets: []domain.LockTarget{
			{
				Framework: "net8.0",
				Edges: []domain.LockEdge{
					{ID: "PackageA", Version: "9.9.9", Type: domain.EdgeTypeDirect},
				},
			},
		},
	}
	loader.EXPECT().Load(gomock.Any(), path).Return(snapshot, nil).Times(1)

	decls := []domain.DependencyDeclaration{
		{ID: "PackageA", Range: parseRange(t, "1.0.0"), Framework: parseFramework(t, "net8.0")},
	}

	installed, _, err := cache.InstalledAndTransitive(context.Background(), decls, path)
	require.NoError(t, err)
	require.Len(t, installed, 1)
	// The declaration, not the artifact, is the source of truth for installed.
	assert.Equal(t, "1.0.0", installed[0].Version)
}
