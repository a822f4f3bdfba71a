package lockfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stanza/internal/core/ports"
)

// NodeID is the Graft node id for the lock artifact loader.
const NodeID graft.ID = "adapter.lock_loader"

func init() {
	graft.Register(graft.Node[ports.LockArtifactLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.LockArtifactLoader, error) {
			return NewLoader(), nil
		},
	})
}
