// Package project implements the project adapter over a stanza.yaml manifest.
package project

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/stanza/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultManifestName is the project manifest file name.
const DefaultManifestName = "stanza.yaml"

// Adapter implements ports.ProjectAdapter backed by a parsed manifest.
// The host project model is wide; this adapter exposes exactly the fields
// the resolver consumes.
type Adapter struct {
	path     string
	manifest manifestDTO
}

// Load reads and parses the manifest at path.
func Load(path string) (*Adapter, error) {
	cleaned := filepath.Clean(path)

	//nolint:gosec // path is provided by the user
	data, err := os.ReadFile(cleaned)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read project manifest")
	}

	var manifest manifestDTO
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, zerr.Wrap(err, "failed to parse project manifest")
	}

	abs, err := filepath.Abs(cleaned)
	if err != nil {
		abs = cleaned
	}
	return &Adapter{path: abs, manifest: manifest}, nil
}

// Identity returns the project name, version and manifest path.
func (a *Adapter) Identity(ctx context.Context) (domain.ProjectIdentity, error) {
	if err := ctx.Err(); err != nil {
		return domain.ProjectIdentity{}, err
	}
	name := a.manifest.Name
	if name == "" {
		name = filepath.Base(filepath.Dir(a.path))
	}
	version := a.manifest.Version
	if version == "" {
		version = "1.0.0"
	}
	return domain.ProjectIdentity{Name: name, Version: version, Path: a.path}, nil
}

// TargetFrameworks returns the declared monikers in declaration order.
func (a *Adapter) TargetFrameworks(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	monikers := make([]string, 0, len(a.manifest.Frameworks))
	for _, fw := range a.manifest.Frameworks {
		monikers = append(monikers, fw.Name)
	}
	return monikers, nil
}

// PackageReferences returns the direct declarations for one framework.
// An empty version string means "any version"; it is not a parse failure.
func (a *Adapter) PackageReferences(ctx context.Context, framework string) ([]domain.DependencyDeclaration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	block, ok := a.frameworkBlock(framework)
	if !ok {
		return nil, nil
	}

	fw, err := domain.ParseFramework(framework)
	if err != nil {
		return nil, err
	}

	decls := make([]domain.DependencyDeclaration, 0, len(block.Dependencies))
	for id, dto := range block.Dependencies {
		r, err := domain.ParseVersionRange(dto.Version)
		if err != nil {
			return nil, zerr.With(err, "package", id)
		}
		decls = append(decls, domain.DependencyDeclaration{
			ID:             id,
			Range:          r,
			IncludeAssets:  dto.Include,
			ExcludeAssets:  dto.Exclude,
			SuppressParent: dto.SuppressParent,
			Framework:      fw,
		})
	}
	// Map iteration order is random; declarations must come out stable.
	slices.SortFunc(decls, func(a, b domain.DependencyDeclaration) int {
		return strings.Compare(strings.ToLower(a.ID), strings.ToLower(b.ID))
	})
	return decls, nil
}

// CentralVersionsEnabled reports whether central version management is on.
func (a *Adapter) CentralVersionsEnabled(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return a.manifest.Central.Enabled, nil
}

// CentralPackageVersions returns the raw central version pairs in document order.
func (a *Adapter) CentralPackageVersions(ctx context.Context) ([]domain.CentralVersionEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	pairs, err := a.manifest.Central.pairs()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read central versions")
	}
	entries := make([]domain.CentralVersionEntry, 0, len(pairs))
	for _, pair := range pairs {
		entries = append(entries, domain.CentralVersionEntry{ID: pair[0], Version: pair[1]})
	}
	return entries, nil
}

// RuntimeIdentifiers returns the runtime identifier and supports lists.
func (a *Adapter) RuntimeIdentifiers(ctx context.Context) (identifiers, supports []string, err error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return a.manifest.Runtimes.Identifiers, a.manifest.Runtimes.Supports, nil
}

// FallbackMonikers returns the two fallback moniker lists for one framework.
func (a *Adapter) FallbackMonikers(ctx context.Context, framework string) (packageFallback, assetFallback []string, err error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	block, ok := a.frameworkBlock(framework)
	if !ok {
		return nil, nil, nil
	}
	return block.PackageFallback, block.AssetFallback, nil
}

// Property returns a named project property, empty when unset.
func (a *Adapter) Property(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return a.manifest.Properties[name], nil
}

// Dir returns the directory containing the manifest.
func (a *Adapter) Dir() string {
	return filepath.Dir(a.path)
}

// Path returns the absolute manifest path.
func (a *Adapter) Path() string {
	return a.path
}

func (a *Adapter) frameworkBlock(moniker string) (frameworkDTO, bool) {
	for _, fw := range a.manifest.Frameworks {
		if fw.Name == moniker {
			return fw, true
		}
	}
	return frameworkDTO{}, false
}
