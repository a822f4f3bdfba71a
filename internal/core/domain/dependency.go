package domain

// DependencyDeclaration represents a direct, explicitly authored dependency of
// the project for one target framework. The same id may legally appear under
// several frameworks; the merger picks one representative per id.
type DependencyDeclaration struct {
	// ID is the package id as authored.
	ID string `json:"id"`

	// Range is the allowed version range. The zero value accepts any version;
	// an empty version string in the source is legal and means exactly that.
	Range VersionRange `json:"range"`

	// IncludeAssets and ExcludeAssets carry the raw asset selection lists
	// ("compile;runtime"). They are forwarded untouched to the restore engine.
	IncludeAssets string `json:"includeAssets,omitempty"`
	ExcludeAssets string `json:"excludeAssets,omitempty"`

	// SuppressParent lists asset groups not flowed to consuming projects.
	SuppressParent string `json:"suppressParent,omitempty"`

	// Framework is the target framework the declaration was authored under.
	Framework Framework `json:"framework"`

	// VersionOverridden marks a declaration whose range was replaced by a
	// central version override.
	VersionOverridden bool `json:"versionOverridden,omitempty"`
}

// Key returns the canonical identity key for the declared package id.
func (d DependencyDeclaration) Key() InternedString {
	return NewCanonicalString(d.ID)
}

// Identity projects the declaration onto a PackageIdentity. An unbounded
// range yields an empty version (displayed as "any").
func (d DependencyDeclaration) Identity() PackageIdentity {
	version := ""
	if !d.Range.IsAny() {
		version = d.Range.String()
	}
	return PackageIdentity{ID: d.ID, Version: version}
}
