package process

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/importa/internal/core/ports"
)

// NodeID is the unique identifier for the local executor Graft node.
const NodeID graft.ID = "adapter.executor"

func init() {
	graft.Register(graft.Node[ports.Executor]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Executor, error) {
			return NewLocal(), nil
		},
	})
}
