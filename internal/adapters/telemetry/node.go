package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stanza/internal/core/ports"
)

// NodeID is the Graft node id for the tracer.
const NodeID graft.ID = "adapter.tracer"

// InstrumentationName identifies this module's spans.
const InstrumentationName = "go.trai.ch/stanza"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Tracer, error) {
			return NewOTelTracer(InstrumentationName), nil
		},
	})
}
