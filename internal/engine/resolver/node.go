package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stanza/internal/adapters/framework"
	"go.trai.ch/stanza/internal/adapters/lockfile"
	"go.trai.ch/stanza/internal/adapters/logger"
	"go.trai.ch/stanza/internal/core/ports"
)

const (
	// MergerNodeID is the unique identifier for the reference merger Graft node.
	MergerNodeID graft.ID = "engine.merger"
	// LockCacheNodeID is the unique identifier for the lock cache Graft node.
	LockCacheNodeID graft.ID = "engine.lock_cache"
	// FallbackNodeID is the unique identifier for the fallback resolver Graft node.
	FallbackNodeID graft.ID = "engine.fallback_resolver"
)

func init() {
	// Merger Node
	graft.Register(graft.Node[*Merger]{
		ID:        MergerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{framework.ComparerNodeID},
		Run: func(ctx context.Context) (*Merger, error) {
			comparer, err := graft.Dep[ports.FrameworkComparer](ctx)
			if err != nil {
				return nil, err
			}
			return NewMerger(comparer), nil
		},
	})

	// LockCache Node
	graft.Register(graft.Node[*LockCache]{
		ID:        LockCacheNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{lockfile.NodeID, MergerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*LockCache, error) {
			loader, err := graft.Dep[ports.LockArtifactLoader](ctx)
			if err != nil {
				return nil, err
			}
			merger, err := graft.Dep[*Merger](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLockCache(loader, merger, log), nil
		},
	})

	// FallbackResolver Node
	graft.Register(graft.Node[*FallbackResolver]{
		ID:        FallbackNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{framework.CompatNodeID},
		Run: func(ctx context.Context) (*FallbackResolver, error) {
			compat, err := graft.Dep[ports.CompatibilityResolver](ctx)
			if err != nil {
				return nil, err
			}
			return NewFallbackResolver(compat), nil
		},
	})
}
