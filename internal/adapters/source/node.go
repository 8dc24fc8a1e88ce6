package source

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reqsync/internal/adapters/fs"
	"go.trai.ch/reqsync/internal/core/ports"
)

// NodeID is the unique identifier for the requirements source Graft node.
const NodeID graft.ID = "adapter.source"

func init() {
	graft.Register(graft.Node[ports.RequirementSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.FileSystemNodeID},
		Run: func(ctx context.Context) (ports.RequirementSource, error) {
			fsys, err := graft.Dep[fs.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewReader(fsys), nil
		},
	})
}
