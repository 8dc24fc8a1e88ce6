package pyproject

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reqsync/internal/core/ports"
)

// NodeID is the unique identifier for the manifest encoder Graft node.
const NodeID graft.ID = "adapter.pyproject"

func init() {
	graft.Register(graft.Node[ports.ManifestEncoder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestEncoder, error) {
			return NewEncoder(), nil
		},
	})
}
