// Package domain contains the core domain models for dependency specification
// resolution: package identities, declarations, version ranges, frameworks,
// lock snapshots and the composed dependency specification.
package domain

// PackageIdentity is a package id paired with a version. Ids compare
// case-insensitively; the original casing is preserved for display.
type PackageIdentity struct {
	// ID is the package id as authored.
	ID string `json:"id"`

	// Version is the declared or resolved version. Empty means "any version"
	// for installed entries that carry an unbounded range.
	Version string `json:"version"`
}

// Key returns the canonical (case-insensitive) identity key for the id.
func (p PackageIdentity) Key() InternedString {
	return NewCanonicalString(p.ID)
}

// Equal reports identity equality: case-insensitive id plus exact version.
func (p PackageIdentity) Equal(other PackageIdentity) bool {
	return p.Key() == other.Key() && p.Version == other.Version
}

// String renders "id@version", with "any" standing in for an empty version.
func (p PackageIdentity) String() string {
	v := p.Version
	if v == "" {
		v = "any"
	}
	return p.ID + "@" + v
}
