package domain

// CentralVersionOverride is a project-wide version constraint applied to every
// declaration of the given package id, regardless of target framework.
type CentralVersionOverride struct {
	// ID is the package id as authored in the central version table.
	ID string `json:"id"`

	// Range is the allowed version range. The zero value means "any version";
	// an empty entry in the source table is legal.
	Range VersionRange `json:"range"`
}

// CentralVersionEntry is a raw id/version pair read from the project before
// validation and deduplication.
type CentralVersionEntry struct {
	ID      string
	Version string
}

// BuildCentralVersions builds the override table from raw pairs. Keys are
// case-insensitive; duplicate ids collapse to a single entry where the last
// pair in input order wins (the pick is arbitrary when the source itself is
// unordered). An empty version is an "any version" override, not an error.
func BuildCentralVersions(pairs []CentralVersionEntry) (map[InternedString]CentralVersionOverride, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	overrides := make(map[InternedString]CentralVersionOverride, len(pairs))
	for _, pair := range pairs {
		r, err := ParseVersionRange(pair.Version)
		if err != nil {
			return nil, err
		}
		overrides[NewCanonicalString(pair.ID)] = CentralVersionOverride{
			ID:    pair.ID,
			Range: r,
		}
	}
	return overrides, nil
}

// ApplyCentralVersions rewrites declarations in place, replacing the range of
// every declaration whose id has a central override. Overrides key by id only:
// an existing explicit range is replaced (last writer wins), ids absent from
// the table are untouched. The input slice is returned for chaining.
func ApplyCentralVersions(decls []DependencyDeclaration, overrides map[InternedString]CentralVersionOverride) []DependencyDeclaration {
	if len(overrides) == 0 {
		return decls
	}
	for i := range decls {
		if override, ok := overrides[decls[i].Key()]; ok {
			decls[i].Range = override.Range
			decls[i].VersionOverridden = true
		}
	}
	return decls
}
