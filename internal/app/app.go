// Package app implements the application layer for stanza.
package app

import (
	"context"
	"path/filepath"

	"go.trai.ch/stanza/internal/core/domain"
	"go.trai.ch/stanza/internal/core/ports"
	"go.trai.ch/stanza/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader   ports.ProjectLoader
	settings ports.SettingsProvider
	fallback *resolver.FallbackResolver
	cache    *resolver.LockCache
	tracer   ports.Tracer
	watcher  ports.Watcher
	logger   ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ProjectLoader,
	settings ports.SettingsProvider,
	fallback *resolver.FallbackResolver,
	cache *resolver.LockCache,
	tracer ports.Tracer,
	watcher ports.Watcher,
	logger ports.Logger,
) *App {
	return &App{
		loader:   loader,
		settings: settings,
		fallback: fallback,
		cache:    cache,
		tracer:   tracer,
		watcher:  watcher,
		logger:   logger,
	}
}

// Spec builds the dependency specification for the project at projectPath.
// In lenient mode a missing output path yields a specification with an
// absent-path signal instead of an error.
func (a *App) Spec(ctx context.Context, projectPath string, lenient bool) (*domain.DependencySpec, error) {
	project, err := a.loader.Load(ctx, projectPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load project")
	}

	builder := resolver.NewSpecBuilder(project, a.settings, a.fallback, a.tracer)
	if lenient {
		return builder.BuildLenient(ctx)
	}
	return builder.Build(ctx)
}

// Listing is the resolved package view of one project: its specification plus
// the merged direct and transitive package lists.
type Listing struct {
	Spec       *domain.DependencySpec
	Installed  []domain.PackageIdentity
	Transitive []domain.PackageIdentity
}

// List resolves the project at projectPath and returns its package listing.
// The lock artifact is optional: without one the transitive list is empty.
func (a *App) List(ctx context.Context, projectPath string) (*Listing, error) {
	spec, err := a.Spec(ctx, projectPath, true)
	if err != nil {
		return nil, err
	}

	var decls []domain.DependencyDeclaration
	for _, fw := range spec.Frameworks {
		decls = append(decls, fw.Dependencies...)
	}

	installed, transitive, err := a.cache.InstalledAndTransitive(ctx, decls, a.lockPath(spec))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve package listing")
	}

	return &Listing{
		Spec:       spec,
		Installed:  installed,
		Transitive: transitive,
	}, nil
}

// Watch rebuilds the listing whenever the project manifest or the lock
// artifact changes, invoking onChange with each fresh result. It blocks until
// ctx is done or the watcher fails.
func (a *App) Watch(ctx context.Context, projectPath string, onChange func(*Listing)) error {
	listing, err := a.List(ctx, projectPath)
	if err != nil {
		return err
	}
	onChange(listing)
	fingerprint := listing.Spec.Fingerprint()

	// The watcher reports absolute paths; normalize the manifest path so the
	// comparison below holds for relative --project values too.
	manifestPath, err := filepath.Abs(projectPath)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve project path")
	}

	paths := []string{projectPath, a.lockPath(listing.Spec)}
	if err := a.watcher.Start(ctx, paths); err != nil {
		return zerr.Wrap(err, "failed to start watcher")
	}
	defer func() {
		if closeErr := a.watcher.Close(); closeErr != nil {
			a.logger.Error(closeErr)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-a.watcher.Events():
			if !ok {
				return nil
			}
			a.logger.Info("change detected: " + event.Path)
			a.cache.Invalidate()

			listing, err = a.List(ctx, projectPath)
			if err != nil {
				a.logger.Error(err)
				continue
			}
			if next := listing.Spec.Fingerprint(); next == fingerprint && event.Path == manifestPath {
				a.logger.Info("specification unchanged")
			} else {
				fingerprint = next
			}
			onChange(listing)
		}
	}
}

// lockPath returns the effective lock artifact path for a specification. A
// project without an explicit lock policy still reads the conventional
// artifact next to the manifest when one exists.
func (a *App) lockPath(spec *domain.DependencySpec) string {
	if spec.Restore.LockFilePath != "" {
		return spec.Restore.LockFilePath
	}
	return filepath.Join(filepath.Dir(spec.Project.Path), resolver.DefaultLockFileName)
}
