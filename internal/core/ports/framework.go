package ports

import "go.trai.ch/stanza/internal/core/domain"

// FrameworkComparer is the pluggable total ordering over target frameworks
// used for deduplication tie-breaks. Injected as a strategy so ordering is
// unit-testable independent of moniker parsing.
//
//go:generate go run go.uber.org/mock/mockgen -source=framework.go -destination=mocks/mock_framework.go -package=mocks
type FrameworkComparer interface {
	// Prefer returns true when a is strictly preferred over b.
	Prefer(a, b domain.Framework) bool
}

// CompatibilityResolver merges the two independently configured fallback
// chains into the effective ordered chain. The precedence rule between the
// legacy and current lists is this component's contract; the fallback
// resolver only parses and forwards.
type CompatibilityResolver interface {
	MergeFallbacks(primary domain.Framework, packageFallback, assetFallback []domain.Framework) []domain.Framework
}
