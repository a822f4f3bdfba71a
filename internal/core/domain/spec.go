package domain

import (
	"encoding/json"
	"maps"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// ProjectIdentity identifies the project a specification is built for.
type ProjectIdentity struct {
	// Name is the project name.
	Name string `json:"name"`

	// Version is the project version ("1.0.0" when unset).
	Version string `json:"version"`

	// Path is the absolute path of the project manifest.
	Path string `json:"path"`
}

// TargetFrameworkInfo is the effective per-framework input to restore: the
// framework itself, its direct dependencies after central version merging,
// the ordered fallback chain and the applied central version table.
type TargetFrameworkInfo struct {
	Framework Framework `json:"framework"`

	// Dependencies are the direct declarations for this framework.
	Dependencies []DependencyDeclaration `json:"dependencies,omitempty"`

	// FallbackFrameworks is the ordered effective compatible-framework chain.
	FallbackFrameworks []Framework `json:"fallbackFrameworks,omitempty"`

	// CentralVersions is the override table applied to Dependencies, keyed by
	// canonical id. Nil when central version management is disabled.
	CentralVersions map[InternedString]CentralVersionOverride `json:"centralVersions,omitempty"`
}

// RestoreMetadata carries everything the restore engine needs besides the
// dependency lists themselves.
type RestoreMetadata struct {
	// OutputPath is where restore writes its assets. HasOutputPath is false
	// only when the lenient build variant ran against a project that never
	// configured one.
	OutputPath    string `json:"outputPath"`
	HasOutputPath bool   `json:"hasOutputPath"`

	// PackagesPath is the package installation folder (project override else
	// the global default).
	PackagesPath string `json:"packagesPath"`

	// Sources are the enabled package sources. A non-empty project override
	// replaces the global list outright; project-only additional sources are
	// always appended.
	Sources []string `json:"sources,omitempty"`

	// FallbackFolders are read-only package folders consulted before sources.
	FallbackFolders []string `json:"fallbackFolders,omitempty"`

	// ConfigFilePaths are the discovered configuration files, nearest first.
	ConfigFilePaths []string `json:"configFilePaths,omitempty"`

	// WarnAsError promotes restore warnings to errors.
	WarnAsError bool `json:"warnAsError"`

	// LockFilePath, LockFileEnabled and RestoreLockedMode describe the lock
	// artifact policy for the next restore.
	LockFilePath      string `json:"lockFilePath,omitempty"`
	LockFileEnabled   bool   `json:"lockFileEnabled"`
	RestoreLockedMode bool   `json:"restoreLockedMode"`
}

// DependencySpec is the complete dependency input for one project. It is a
// value: once returned by the builder, mutation by the caller has no effect
// on later queries.
type DependencySpec struct {
	Project ProjectIdentity `json:"project"`

	// RuntimeIdentifiers and RuntimeSupports carry the runtime graph inputs.
	RuntimeIdentifiers []string `json:"runtimeIdentifiers,omitempty"`
	RuntimeSupports    []string `json:"runtimeSupports,omitempty"`

	// Frameworks holds one entry per declared target framework, in
	// declaration order.
	Frameworks []TargetFrameworkInfo `json:"frameworks"`

	Restore RestoreMetadata `json:"restore"`
}

// Fingerprint returns a stable hash of the specification. The restore engine
// compares fingerprints to detect no-op restores.
func (s *DependencySpec) Fingerprint() uint64 {
	data, err := json.Marshal(s.canonical())
	if err != nil {
		// Only plain values are encoded; marshaling cannot fail.
		return 0
	}
	return xxhash.Sum64(data)
}

// canonical returns a copy with map-valued fields flattened into sorted
// slices so the JSON encoding, and therefore the fingerprint, is stable.
func (s *DependencySpec) canonical() any {
	type flatFramework struct {
		TargetFrameworkInfo
		CentralVersions []CentralVersionOverride `json:"centralVersionList,omitempty"`
	}
	frameworks := make([]flatFramework, len(s.Frameworks))
	for i, fw := range s.Frameworks {
		flat := flatFramework{TargetFrameworkInfo: fw}
		flat.TargetFrameworkInfo.CentralVersions = nil
		for _, key := range slices.Sorted(keyStrings(fw.CentralVersions)) {
			flat.CentralVersions = append(flat.CentralVersions, fw.CentralVersions[NewCanonicalString(key)])
		}
		frameworks[i] = flat
	}
	return struct {
		*DependencySpec
		Frameworks []flatFramework `json:"frameworks"`
	}{s, frameworks}
}

// Clone returns a deep copy. The builder hands out clones so callers can
// never alias the builder's internal state.
func (s *DependencySpec) Clone() *DependencySpec {
	if s == nil {
		return nil
	}
	clone := *s
	clone.RuntimeIdentifiers = slices.Clone(s.RuntimeIdentifiers)
	clone.RuntimeSupports = slices.Clone(s.RuntimeSupports)
	clone.Restore.Sources = slices.Clone(s.Restore.Sources)
	clone.Restore.FallbackFolders = slices.Clone(s.Restore.FallbackFolders)
	clone.Restore.ConfigFilePaths = slices.Clone(s.Restore.ConfigFilePaths)
	clone.Frameworks = make([]TargetFrameworkInfo, len(s.Frameworks))
	for i, fw := range s.Frameworks {
		cfw := fw
		cfw.Dependencies = slices.Clone(fw.Dependencies)
		cfw.FallbackFrameworks = slices.Clone(fw.FallbackFrameworks)
		if fw.CentralVersions != nil {
			cfw.CentralVersions = maps.Clone(fw.CentralVersions)
		}
		clone.Frameworks[i] = cfw
	}
	return &clone
}

func keyStrings(m map[InternedString]CentralVersionOverride) func(yield func(string) bool) {
	return func(yield func(string) bool) {
		for k := range m {
			if !yield(k.String()) {
				return
			}
		}
	}
}
