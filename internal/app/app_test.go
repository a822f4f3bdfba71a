package app_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stanza/internal/adapters/config"
	"go.trai.ch/stanza/internal/adapters/framework"
	"go.trai.ch/stanza/internal/adapters/lockfile"
	"go.trai.ch/stanza/internal/adapters/logger"
	"go.trai.ch/stanza/internal/adapters/project"
	"go.trai.ch/stanza/internal/adapters/telemetry"
	"go.trai.ch/stanza/internal/app"
	"go.trai.ch/stanza/internal/core/domain"
	"go.trai.ch/stanza/internal/core/ports"
	"go.trai.ch/stanza/internal/core/ports/mocks"
	"go.trai.ch/stanza/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

const testManifest = `name: demo
frameworks:
  - name: net8.0
    dependencies:
      Serilog: "3.1.1"
  - name: netstandard2.0
    dependencies:
      Serilog: "2.10.0"
properties:
  outputPath: obj
`

const testArtifact = `{
  "version": 1,
  "targets": [
    {
      "framework": "net8.0",
      "edges": [
        {"id": "Serilog", "version": "3.1.1", "type": "direct"},
        {"id": "System.Memory", "version": "4.5.5", "type": "transitive"}
      ]
    }
  ]
}`

func quietLogger(t *testing.T) ports.Logger {
	t.Helper()
	l := logger.New()
	l.(*logger.Logger).SetOutput(io.Discard)
	return l
}

func newApp(t *testing.T, watch ports.Watcher) *app.App {
	t.Helper()
	return app.New(
		project.NewLoader(),
		mustSettings(t),
		resolver.NewFallbackResolver(framework.NewCompatResolver()),
		resolver.NewLockCache(
			lockfile.NewLoader(),
			resolver.NewMerger(framework.NewComparer()),
			quietLogger(t),
		),
		telemetry.NewNoOpTracer(),
		watch,
		quietLogger(t),
	)
}

func mustSettings(t *testing.T) *config.Settings {
	t.Helper()
	s, err := config.Discover(t.TempDir())
	require.NoError(t, err)
	return s
}

func writeProject(t *testing.T, withLock bool) string {
	t.Helper()
	dir := t.TempDir()
	manifest := filepath.Join(dir, project.DefaultManifestName)
	require.NoError(t, os.WriteFile(manifest, []byte(testManifest), 0o600))
	if withLock {
		lock := filepath.Join(dir, resolver.DefaultLockFileName)
		require.NoError(t, os.WriteFile(lock, []byte(testArtifact), 0o600))
	}
	return manifest
}

func TestApp_Spec(t *testing.T) {
	a := newApp(t, nil)
	manifest := writeProject(t, false)

	spec, err := a.Spec(context.Background(), manifest, false)
	require.NoError(t, err)

	assert.Equal(t, "demo", spec.Project.Name)
	require.Len(t, spec.Frameworks, 2)
	assert.Equal(t, "net8.0", spec.Frameworks[0].Framework.String())
	assert.Equal(t, "obj", spec.Restore.OutputPath)
}

func TestApp_Spec_MissingManifest(t *testing.T) {
	a := newApp(t, nil)

	_, err := a.Spec(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"), false)
	require.Error(t, err)
}

func TestApp_List_MergesAcrossFrameworksAndLock(t *testing.T) {
	a := newApp(t, nil)
	manifest := writeProject(t, true)

	listing, err := a.List(context.Background(), manifest)
	require.NoError(t, err)

	require.Len(t, listing.Installed, 1)
	// The net8.0 declaration wins the cross-framework tie-break.
	assert.Equal(t, domain.PackageIdentity{ID: "Serilog", Version: "3.1.1"}, listing.Installed[0])

	require.Len(t, listing.Transitive, 1)
	assert.Equal(t, "System.Memory", listing.Transitive[0].ID)
}

func TestApp_List_WithoutLockArtifact(t *testing.T) {
	a := newApp(t, nil)
	manifest := writeProject(t, false)

	listing, err := a.List(context.Background(), manifest)
	require.NoError(t, err)

	require.Len(t, listing.Installed, 1)
	assert.Empty(t, listing.Transitive)
}

func TestApp_Watch_LogsUnchangedForRelativeProjectPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	watch := mocks.NewMockWatcher(ctrl)
	log := mocks.NewMockLogger(ctrl)

	a := app.New(
		project.NewLoader(),
		mustSettings(t),
		resolver.NewFallbackResolver(framework.NewCompatResolver()),
		resolver.NewLockCache(
			lockfile.NewLoader(),
			resolver.NewMerger(framework.NewComparer()),
			quietLogger(t),
		),
		telemetry.NewNoOpTracer(),
		watch,
		log,
	)

	manifest := writeProject(t, false)
	t.Chdir(filepath.Dir(manifest))
	absManifest, err := filepath.Abs(project.DefaultManifestName)
	require.NoError(t, err)

	events := make(chan ports.WatchEvent, 1)
	var recv <-chan ports.WatchEvent = events

	watch.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil)
	watch.EXPECT().Events().Return(recv).AnyTimes()
	watch.EXPECT().Close().Return(nil)

	unchanged := make(chan struct{})
	log.EXPECT().Info("specification unchanged").Do(func(string) { close(unchanged) })
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listings := make(chan *app.Listing, 4)
	done := make(chan error, 1)
	go func() {
		done <- a.Watch(ctx, project.DefaultManifestName, func(l *app.Listing) {
			listings <- l
		})
	}()

	<-listings

	// The watcher reports the manifest by absolute path.
	events <- ports.WatchEvent{Path: absManifest}
	<-listings

	select {
	case <-unchanged:
	case <-time.After(5 * time.Second):
		t.Fatal("unchanged rebuild was not logged")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop on context cancellation")
	}
}

func TestApp_Watch_RebuildsOnEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	watch := mocks.NewMockWatcher(ctrl)
	a := newApp(t, watch)
	manifest := writeProject(t, false)

	events := make(chan ports.WatchEvent, 1)
	var recv <-chan ports.WatchEvent = events

	watch.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil)
	watch.EXPECT().Events().Return(recv).AnyTimes()
	watch.EXPECT().Close().Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listings := make(chan *app.Listing, 4)
	done := make(chan error, 1)
	go func() {
		done <- a.Watch(ctx, manifest, func(l *app.Listing) {
			listings <- l
		})
	}()

	// Initial listing arrives before any event.
	first := <-listings
	require.Len(t, first.Installed, 1)

	events <- ports.WatchEvent{Path: manifest}
	second := <-listings
	require.Len(t, second.Installed, 1)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop on context cancellation")
	}
}
