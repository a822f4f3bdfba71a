package ports

import (
	"context"

	"go.trai.ch/stanza/internal/core/domain"
)

// ProjectAdapter narrows the host project model to exactly the fields this
// core consumes. Every read may suspend (the host may marshal the call onto
// its own execution context), hence the context on each method.
//
//go:generate go run go.uber.org/mock/mockgen -source=project_adapter.go -destination=mocks/mock_project_adapter.go -package=mocks
type ProjectAdapter interface {
	// Identity returns the project name, version and manifest path.
	Identity(ctx context.Context) (domain.ProjectIdentity, error)

	// TargetFrameworks returns the declared target framework monikers, in
	// declaration order.
	TargetFrameworks(ctx context.Context) ([]string, error)

	// PackageReferences returns the raw direct declarations for one target
	// framework moniker.
	PackageReferences(ctx context.Context, framework string) ([]domain.DependencyDeclaration, error)

	// CentralVersionsEnabled reports whether central version management is on.
	CentralVersionsEnabled(ctx context.Context) (bool, error)

	// CentralPackageVersions returns the raw central version pairs.
	CentralPackageVersions(ctx context.Context) ([]domain.CentralVersionEntry, error)

	// RuntimeIdentifiers returns the runtime identifier and supports lists.
	RuntimeIdentifiers(ctx context.Context) (identifiers, supports []string, err error)

	// FallbackMonikers returns the two independently configured fallback
	// moniker lists (legacy package fallback, current asset fallback) for one
	// target framework.
	FallbackMonikers(ctx context.Context, framework string) (packageFallback, assetFallback []string, err error)

	// Property returns a named project property, empty when unset.
	Property(ctx context.Context, name string) (string, error)
}

// ProjectLoader opens the project manifest at a path and returns its adapter.
type ProjectLoader interface {
	Load(ctx context.Context, path string) (ProjectAdapter, error)
}
