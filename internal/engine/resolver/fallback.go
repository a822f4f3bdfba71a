package resolver

import (
	"go.trai.ch/stanza/internal/core/domain"
	"go.trai.ch/stanza/internal/core/ports"
)

// FallbackResolver computes the effective compatible-framework chain from the
// two independently configured fallback lists (the legacy package fallback
// and the current asset fallback). It only parses and validates; the
// precedence merge between the two lists is the injected compatibility
// resolver's contract.
type FallbackResolver struct {
	compat ports.CompatibilityResolver
}

// NewFallbackResolver creates a FallbackResolver with the given merge strategy.
func NewFallbackResolver(compat ports.CompatibilityResolver) *FallbackResolver {
	return &FallbackResolver{compat: compat}
}

// Resolve parses both fallback moniker lists and returns the merged effective
// chain. An unparseable moniker fails fast; it is never silently skipped.
func (r *FallbackResolver) Resolve(primary domain.Framework, packageFallback, assetFallback []string) ([]domain.Framework, error) {
	pkg, err := domain.ParseFrameworks(packageFallback)
	if err != nil {
		return nil, err
	}
	asset, err := domain.ParseFrameworks(assetFallback)
	if err != nil {
		return nil, err
	}
	if len(pkg) == 0 && len(asset) == 0 {
		return nil, nil
	}
	return r.compat.MergeFallbacks(primary, pkg, asset), nil
}
