package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// FrameworkFamily identifies the platform family a target framework belongs to.
type FrameworkFamily string

const (
	// FamilyNet is the modern unified platform ("net5.0" and later, plus classic "net472").
	FamilyNet FrameworkFamily = "net"
	// FamilyNetCoreApp is the pre-unification core platform ("netcoreapp3.1").
	FamilyNetCoreApp FrameworkFamily = "netcoreapp"
	// FamilyNetStandard is the portable contract surface ("netstandard2.0").
	FamilyNetStandard FrameworkFamily = "netstandard"
	// FamilyPortable is the legacy portable profile ("portable-net45+win8").
	FamilyPortable FrameworkFamily = "portable"
	// FamilyAny matches every framework ("any").
	FamilyAny FrameworkFamily = "any"
)

// Framework is a parsed, validated target framework.
// The moniker is stored canonically (lower-cased) so equality is case-insensitive.
type Framework struct {
	// Moniker is the canonical short moniker (e.g. "net8.0").
	Moniker InternedString

	// Family is the platform family the moniker belongs to.
	Family FrameworkFamily

	// Version is the platform version as written in the moniker ("8.0").
	// Empty for "any" and for portable profiles.
	Version string
}

// AnyFramework matches every target framework.
var AnyFramework = Framework{
	Moniker: NewCanonicalString("any"),
	Family:  FamilyAny,
}

// ParseFramework parses a short framework moniker. Unparseable monikers fail
// fast with ErrMalformedFramework; a bad moniker must never be silently skipped.
func ParseFramework(moniker string) (Framework, error) {
	canonical := strings.ToLower(strings.TrimSpace(moniker))
	if canonical == "" {
		return Framework{}, zerr.With(ErrMalformedFramework, "moniker", moniker)
	}

	if canonical == "any" {
		return AnyFramework, nil
	}

	if strings.HasPrefix(canonical, "portable-") {
		if len(canonical) == len("portable-") {
			return Framework{}, zerr.With(ErrMalformedFramework, "moniker", moniker)
		}
		return Framework{
			Moniker: NewCanonicalString(canonical),
			Family:  FamilyPortable,
		}, nil
	}

	for _, family := range []FrameworkFamily{FamilyNetStandard, FamilyNetCoreApp, FamilyNet} {
		prefix := string(family)
		if !strings.HasPrefix(canonical, prefix) {
			continue
		}
		version := canonical[len(prefix):]
		if version == "" || !isFrameworkVersion(version) {
			return Framework{}, zerr.With(ErrMalformedFramework, "moniker", moniker)
		}
		return Framework{
			Moniker: NewCanonicalString(canonical),
			Family:  family,
			Version: normalizeFrameworkVersion(version),
		}, nil
	}

	return Framework{}, zerr.With(ErrMalformedFramework, "moniker", moniker)
}

// ParseFrameworks parses a list of monikers, failing on the first bad one.
func ParseFrameworks(monikers []string) ([]Framework, error) {
	if len(monikers) == 0 {
		return nil, nil
	}
	frameworks := make([]Framework, 0, len(monikers))
	for _, m := range monikers {
		fw, err := ParseFramework(m)
		if err != nil {
			return nil, err
		}
		frameworks = append(frameworks, fw)
	}
	return frameworks, nil
}

// String returns the canonical moniker.
func (f Framework) String() string {
	return f.Moniker.String()
}

// MarshalText renders the framework as its canonical moniker.
func (f Framework) MarshalText() ([]byte, error) {
	return []byte(f.Moniker.String()), nil
}

// UnmarshalText parses a moniker in place.
func (f *Framework) UnmarshalText(text []byte) error {
	parsed, err := ParseFramework(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// IsZero reports whether the framework was never parsed.
func (f Framework) IsZero() bool {
	return f.Moniker.IsZero()
}

// Equal reports case-insensitive moniker equality.
func (f Framework) Equal(other Framework) bool {
	return f.Moniker == other.Moniker
}

// isFrameworkVersion accepts digit/dot version suffixes like "8.0", "472", "3.1".
func isFrameworkVersion(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return !strings.HasPrefix(s, ".") && !strings.HasSuffix(s, ".")
}

// normalizeFrameworkVersion expands compact classic versions ("472" -> "4.7.2")
// so version ordering is uniform across moniker styles.
func normalizeFrameworkVersion(s string) string {
	if strings.Contains(s, ".") {
		return s
	}
	parts := make([]string, 0, len(s))
	for _, r := range s {
		parts = append(parts, string(r))
	}
	return strings.Join(parts, ".")
}
