package framework

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stanza/internal/core/ports"
)

const (
	// ComparerNodeID is the Graft node id for the framework comparer.
	ComparerNodeID graft.ID = "adapter.framework_comparer"
	// CompatNodeID is the Graft node id for the compatibility resolver.
	CompatNodeID graft.ID = "adapter.compat_resolver"
)

func init() {
	graft.Register(graft.Node[ports.FrameworkComparer]{
		ID:        ComparerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.FrameworkComparer, error) {
			return NewComparer(), nil
		},
	})

	graft.Register(graft.Node[ports.CompatibilityResolver]{
		ID:        CompatNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.CompatibilityResolver, error) {
			return NewCompatResolver(), nil
		},
	})
}
