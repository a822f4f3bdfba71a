package resolver

import (
	"context"
	"path/filepath"
	"strings"

	"go.trai.ch/stanza/internal/core/domain"
	"go.trai.ch/stanza/internal/core/ports"
	"go.trai.ch/zerr"
)

// Project property names consumed by the builder. Everything the builder
// reads from the host project goes through these keys.
const (
	PropOutputPath                = "outputPath"
	PropPackagesPath              = "packagesPath"
	PropSources                   = "sources"
	PropAdditionalSources         = "additionalSources"
	PropFallbackFolders           = "fallbackFolders"
	PropAdditionalFallbackFolders = "additionalFallbackFolders"
	PropWarnAsError               = "warnAsError"
	PropLockFilePath              = "lockFilePath"
	PropLockFileEnabled           = "lockFileEnabled"
	PropRestoreLockedMode         = "restoreLockedMode"
)

// DefaultLockFileName is the lock artifact name used when the project does
// not configure an explicit path.
const DefaultLockFileName = "stanza.lock.json"

// SpecBuilder assembles the full dependency specification for one project
// from the project adapter, the settings provider, the central version
// registry and the fallback resolver.
type SpecBuilder struct {
	project  ports.ProjectAdapter
	settings ports.SettingsProvider
	fallback *FallbackResolver
	tracer   ports.Tracer
}

// NewSpecBuilder creates a SpecBuilder.
func NewSpecBuilder(
	project ports.ProjectAdapter,
	settings ports.SettingsProvider,
	fallback *FallbackResolver,
	tracer ports.Tracer,
) *SpecBuilder {
	return &SpecBuilder{
		project:  project,
		settings: settings,
		fallback: fallback,
		tracer:   tracer,
	}
}

// Build composes the dependency specification. A missing mandatory output
// path fails with domain.ErrMissingRequiredProperty.
func (b *SpecBuilder) Build(ctx context.Context) (*domain.DependencySpec, error) {
	return b.build(ctx, false)
}

// BuildLenient is the non-throwing variant: a missing output path yields a
// specification with an absent-path signal instead of an error.
func (b *SpecBuilder) BuildLenient(ctx context.Context) (*domain.DependencySpec, error) {
	return b.build(ctx, true)
}

func (b *SpecBuilder) build(ctx context.Context, lenient bool) (*domain.DependencySpec, error) {
	ctx, span := b.tracer.Start(ctx, "spec.build")
	defer span.End()

	identity, err := b.project.Identity(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read project identity")
	}
	span.SetAttribute("project", identity.Name)

	monikers, err := b.project.TargetFrameworks(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read target frameworks")
	}
	if len(monikers) == 0 {
		return nil, zerr.With(domain.ErrNoTargetFrameworks, "project", identity.Name)
	}
	b.tracer.EmitFrameworks(ctx, monikers)

	overrides, err := b.centralVersions(ctx)
	if err != nil {
		return nil, err
	}

	frameworks := make([]domain.TargetFrameworkInfo, 0, len(monikers))
	for _, moniker := range monikers {
		info, err := b.frameworkInfo(ctx, moniker, overrides)
		if err != nil {
			return nil, err
		}
		frameworks = append(frameworks, info)
	}

	restore, err := b.restoreMetadata(ctx, identity, lenient)
	if err != nil {
		return nil, err
	}

	identifiers, supports, err := b.project.RuntimeIdentifiers(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read runtime identifiers")
	}

	spec := &domain.DependencySpec{
		Project:            identity,
		RuntimeIdentifiers: identifiers,
		RuntimeSupports:    supports,
		Frameworks:         frameworks,
		Restore:            restore,
	}
	// Hand out a detached copy so later queries never see caller mutation.
	return spec.Clone(), nil
}

// centralVersions builds the override table, or returns nil when central
// version management is disabled.
func (b *SpecBuilder) centralVersions(ctx context.Context) (map[domain.InternedString]domain.CentralVersionOverride, error) {
	enabled, err := b.project.CentralVersionsEnabled(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read central version flag")
	}
	if !enabled {
		return nil, nil
	}

	entries, err := b.project.CentralPackageVersions(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read central package versions")
	}
	overrides, err := domain.BuildCentralVersions(entries)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build central version registry")
	}
	return overrides, nil
}

// frameworkInfo assembles one TargetFrameworkInfo: parsed primary framework,
// central-version-merged declarations and the effective fallback chain.
func (b *SpecBuilder) frameworkInfo(
	ctx context.Context,
	moniker string,
	overrides map[domain.InternedString]domain.CentralVersionOverride,
) (domain.TargetFrameworkInfo, error) {
	primary, err := domain.ParseFramework(moniker)
	if err != nil {
		return domain.TargetFrameworkInfo{}, err
	}

	decls, err := b.project.PackageReferences(ctx, moniker)
	if err != nil {
		return domain.TargetFrameworkInfo{}, zerr.Wrap(err, "failed to read package references")
	}
	decls = domain.ApplyCentralVersions(decls, overrides)

	packageFallback, assetFallback, err := b.project.FallbackMonikers(ctx, moniker)
	if err != nil {
		return domain.TargetFrameworkInfo{}, zerr.Wrap(err, "failed to read fallback monikers")
	}
	chain, err := b.fallback.Resolve(primary, packageFallback, assetFallback)
	if err != nil {
		return domain.TargetFrameworkInfo{}, err
	}

	return domain.TargetFrameworkInfo{
		Framework:          primary,
		Dependencies:       decls,
		FallbackFrameworks: chain,
		CentralVersions:    overrides,
	}, nil
}

// restoreMetadata computes the restore engine inputs from project properties
// and global settings. Project overrides win outright when non-empty;
// project-only additions are always appended.
func (b *SpecBuilder) restoreMetadata(ctx context.Context, identity domain.ProjectIdentity, lenient bool) (domain.RestoreMetadata, error) {
	var meta domain.RestoreMetadata

	outputPath, err := b.project.Property(ctx, PropOutputPath)
	if err != nil {
		return meta, zerr.Wrap(err, "failed to read output path")
	}
	if outputPath == "" && !lenient {
		return meta, zerr.With(domain.ErrMissingRequiredProperty, "property", PropOutputPath)
	}
	meta.OutputPath = outputPath
	meta.HasOutputPath = outputPath != ""

	packagesPath, err := b.project.Property(ctx, PropPackagesPath)
	if err != nil {
		return meta, zerr.Wrap(err, "failed to read packages path")
	}
	if packagesPath == "" {
		packagesPath = b.settings.GlobalPackagesFolder()
	}
	meta.PackagesPath = packagesPath

	meta.Sources, err = b.overrideOrFallback(ctx, PropSources, PropAdditionalSources, b.settings.EnabledSources())
	if err != nil {
		return meta, err
	}
	meta.FallbackFolders, err = b.overrideOrFallback(ctx, PropFallbackFolders, PropAdditionalFallbackFolders, b.settings.FallbackFolders())
	if err != nil {
		return meta, err
	}
	meta.ConfigFilePaths = b.settings.ConfigFilePaths()

	warnAsError, err := b.project.Property(ctx, PropWarnAsError)
	if err != nil {
		return meta, zerr.Wrap(err, "failed to read warning policy")
	}
	meta.WarnAsError = isTrue(warnAsError)

	lockPath, err := b.project.Property(ctx, PropLockFilePath)
	if err != nil {
		return meta, zerr.Wrap(err, "failed to read lock file path")
	}
	lockEnabled, err := b.project.Property(ctx, PropLockFileEnabled)
	if err != nil {
		return meta, zerr.Wrap(err, "failed to read lock file flag")
	}
	lockedMode, err := b.project.Property(ctx, PropRestoreLockedMode)
	if err != nil {
		return meta, zerr.Wrap(err, "failed to read locked mode flag")
	}

	meta.LockFileEnabled = isTrue(lockEnabled) || lockPath != ""
	meta.RestoreLockedMode = isTrue(lockedMode)
	if meta.LockFileEnabled {
		if lockPath == "" {
			lockPath = filepath.Join(filepath.Dir(identity.Path), DefaultLockFileName)
		}
		meta.LockFilePath = lockPath
	}

	return meta, nil
}

// overrideOrFallback implements the source/fallback-folder rule: a non-empty
// project override list wins outright, otherwise the global list applies;
// project-only additions are appended in both cases.
func (b *SpecBuilder) overrideOrFallback(ctx context.Context, overrideProp, additionalProp string, global []string) ([]string, error) {
	override, err := b.project.Property(ctx, overrideProp)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read "+overrideProp)
	}
	additional, err := b.project.Property(ctx, additionalProp)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read "+additionalProp)
	}

	result := splitList(override)
	if len(result) == 0 {
		result = append(result, global...)
	}
	return append(result, splitList(additional)...), nil
}

// splitList splits a semicolon-delimited property value, dropping empties.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for part := range strings.SplitSeq(s, ";") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func isTrue(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}
