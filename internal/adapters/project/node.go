package project

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stanza/internal/core/ports"
)

// NodeID is the Graft node id for the project loader.
const NodeID graft.ID = "adapter.project_loader"

// Loader implements ports.ProjectLoader.
type Loader struct{}

// NewLoader creates a project manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load opens the manifest at path.
func (l *Loader) Load(ctx context.Context, path string) (ports.ProjectAdapter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Load(path)
}

func init() {
	graft.Register(graft.Node[ports.ProjectLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ProjectLoader, error) {
			return NewLoader(), nil
		},
	})
}
