package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/stanza/internal/core/ports"
)

// NodeID is the Graft node id for the settings provider.
const NodeID graft.ID = "adapter.settings"

func init() {
	graft.Register(graft.Node[ports.SettingsProvider]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.SettingsProvider, error) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			return Discover(cwd)
		},
	})
}
