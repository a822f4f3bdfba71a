// Package framework provides the default framework ordering and
// compatibility strategies.
package framework

import (
	"strings"

	"go.trai.ch/stanza/internal/core/domain"
)

// familyRank orders platform families by precedence. Higher wins.
var familyRank = map[domain.FrameworkFamily]int{
	domain.FamilyNet:         5,
	domain.FamilyNetCoreApp:  4,
	domain.FamilyNetStandard: 3,
	domain.FamilyPortable:    2,
	domain.FamilyAny:         1,
}

// Comparer implements ports.FrameworkComparer with a fixed total ordering:
// platform family precedence, then descending platform version, then the
// canonical moniker as the final deterministic tie-break.
type Comparer struct{}

// NewComparer creates the default framework comparer.
func NewComparer() *Comparer {
	return &Comparer{}
}

// Prefer returns true when a is strictly preferred over b.
func (c *Comparer) Prefer(a, b domain.Framework) bool {
	ra, rb := familyRank[a.Family], familyRank[b.Family]
	if ra != rb {
		return ra > rb
	}
	if cmp := domain.CompareVersionLiterals(a.Version, b.Version); cmp != 0 {
		return cmp > 0
	}
	return strings.Compare(a.Moniker.String(), b.Moniker.String()) < 0
}

// CompatResolver implements ports.CompatibilityResolver.
//
// Merge rule: when the current (asset) fallback list is non-empty it wins
// outright; otherwise the legacy (package) fallback list applies. Duplicate
// monikers are removed preserving first occurrence, and the primary framework
// itself never appears in its own fallback chain.
type CompatResolver struct{}

// NewCompatResolver creates the default compatibility resolver.
func NewCompatResolver() *CompatResolver {
	return &CompatResolver{}
}

// MergeFallbacks merges the two fallback chains into the effective one.
func (r *CompatResolver) MergeFallbacks(primary domain.Framework, packageFallback, assetFallback []domain.Framework) []domain.Framework {
	chain := assetFallback
	if len(chain) == 0 {
		chain = packageFallback
	}

	seen := map[domain.InternedString]struct{}{
		primary.Moniker: {},
	}
	var merged []domain.Framework
	for _, fw := range chain {
		if _, ok := seen[fw.Moniker]; ok {
			continue
		}
		seen[fw.Moniker] = struct{}{}
		merged = append(merged, fw)
	}
	return merged
}
