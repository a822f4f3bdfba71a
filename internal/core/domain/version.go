package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// VersionRange represents an allowed version interval for a package.
// The zero value (and an empty or "*" input) means "accept any version".
type VersionRange struct {
	// Raw is the original string as authored in the project.
	Raw string

	// MinVersion is the lower bound, empty when unbounded.
	MinVersion string
	// MinInclusive reports whether the lower bound itself is allowed.
	MinInclusive bool

	// MaxVersion is the upper bound, empty when unbounded.
	MaxVersion string
	// MaxInclusive reports whether the upper bound itself is allowed.
	MaxInclusive bool
}

// AnyVersion is the range accepting every version.
var AnyVersion = VersionRange{}

// ParseVersionRange parses a version range string.
//
// Accepted forms:
//   - ""            any version (an empty declaration is legal, not an error)
//   - "*"           any version
//   - "1.2.3"       minimum version, inclusive (floor semantics)
//   - "[1.0,2.0)"   interval with bracket inclusivity on either side
func ParseVersionRange(s string) (VersionRange, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || trimmed == "*" {
		return AnyVersion, nil
	}

	if !strings.HasPrefix(trimmed, "[") && !strings.HasPrefix(trimmed, "(") {
		// Plain version: inclusive floor.
		if !isVersionLiteral(trimmed) {
			return VersionRange{}, zerr.With(ErrMalformedVersionRange, "range", s)
		}
		return VersionRange{
			Raw:          trimmed,
			MinVersion:   trimmed,
			MinInclusive: true,
		}, nil
	}

	closer := trimmed[len(trimmed)-1]
	if closer != ']' && closer != ')' {
		return VersionRange{}, zerr.With(ErrMalformedVersionRange, "range", s)
	}

	inner := trimmed[1 : len(trimmed)-1]
	parts := strings.Split(inner, ",")
	if len(parts) > 2 {
		return VersionRange{}, zerr.With(ErrMalformedVersionRange, "range", s)
	}

	r := VersionRange{
		Raw:          trimmed,
		MinInclusive: trimmed[0] == '[',
		MaxInclusive: closer == ']',
	}

	r.MinVersion = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		r.MaxVersion = strings.TrimSpace(parts[1])
	} else {
		// "[1.0]" pins an exact version.
		r.MaxVersion = r.MinVersion
	}

	if r.MinVersion == "" && r.MaxVersion == "" {
		return VersionRange{}, zerr.With(ErrMalformedVersionRange, "range", s)
	}
	for _, v := range []string{r.MinVersion, r.MaxVersion} {
		if v != "" && !isVersionLiteral(v) {
			return VersionRange{}, zerr.With(ErrMalformedVersionRange, "range", s)
		}
	}

	return r, nil
}

// IsAny reports whether the range accepts every version.
func (r VersionRange) IsAny() bool {
	return r.MinVersion == "" && r.MaxVersion == ""
}

// String renders the range in its canonical form.
func (r VersionRange) String() string {
	if r.IsAny() {
		return "*"
	}
	if r.MaxVersion == "" && r.MinInclusive {
		return r.MinVersion
	}
	var b strings.Builder
	if r.MinInclusive {
		b.WriteByte('[')
	} else {
		b.WriteByte('(')
	}
	b.WriteString(r.MinVersion)
	b.WriteByte(',')
	b.WriteString(r.MaxVersion)
	if r.MaxInclusive {
		b.WriteByte(']')
	} else {
		b.WriteByte(')')
	}
	return b.String()
}

// MarshalText renders the range in its canonical form.
func (r VersionRange) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText parses a range in place.
func (r *VersionRange) UnmarshalText(text []byte) error {
	parsed, err := ParseVersionRange(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// isVersionLiteral checks that s looks like a dotted version, optionally with a
// pre-release suffix ("1.2.3-beta.1"). It deliberately does not validate semver
// ordering rules; the restore engine owns full version semantics.
func isVersionLiteral(s string) bool {
	base, _, _ := strings.Cut(s, "-")
	if base == "" {
		return false
	}
	for part := range strings.SplitSeq(base, ".") {
		if part == "" {
			return false
		}
		if _, err := strconv.Atoi(part); err != nil {
			return false
		}
	}
	return true
}

// CompareVersionLiterals orders two dotted version strings numerically,
// segment by segment. Missing segments compare as zero; a pre-release suffix
// sorts before its release ("1.0.0-rc" < "1.0.0"). Returns -1, 0, or 1.
func CompareVersionLiterals(a, b string) int {
	aBase, aPre, _ := strings.Cut(a, "-")
	bBase, bPre, _ := strings.Cut(b, "-")

	aParts := strings.Split(aBase, ".")
	bParts := strings.Split(bBase, ".")
	for i := 0; i < len(aParts) || i < len(bParts); i++ {
		av, bv := 0, 0
		if i < len(aParts) {
			av, _ = strconv.Atoi(aParts[i])
		}
		if i < len(bParts) {
			bv, _ = strconv.Atoi(bParts[i])
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}

	switch {
	case aPre == bPre:
		return 0
	case aPre == "":
		return 1
	case bPre == "":
		return -1
	case aPre < bPre:
		return -1
	default:
		return 1
	}
}
