package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reqsync/internal/core/ports"
)

const (
	// FileSystemNodeID is the unique identifier for the filesystem Graft node.
	FileSystemNodeID graft.ID = "adapter.fs"
	// StoreNodeID is the unique identifier for the manifest store Graft node.
	StoreNodeID graft.ID = "adapter.fs.store"
)

func init() {
	graft.Register(graft.Node[FileSystem]{
		ID:        FileSystemNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (FileSystem, error) {
			return NewOSFS(), nil
		},
	})

	graft.Register(graft.Node[ports.ManifestStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{FileSystemNodeID},
		Run: func(ctx context.Context) (ports.ManifestStore, error) {
			fsys, err := graft.Dep[FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(fsys), nil
		},
	})
}
