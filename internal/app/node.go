package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reqsync/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/reqsync/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/reqsync/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/reqsync/internal/adapters/pyproject" //nolint:depguard // Wired in app layer
	"go.trai.ch/reqsync/internal/adapters/source"    //nolint:depguard // Wired in app layer
	"go.trai.ch/reqsync/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/reqsync/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components the CLI layer needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			source.NodeID,
			pyproject.NodeID,
			fs.StoreNodeID,
			logger.NodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	src, err := graft.Dep[ports.RequirementSource](ctx)
	if err != nil {
		return nil, err
	}

	encoder, err := graft.Dep[ports.ManifestEncoder](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ManifestStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	watchers, err := graft.Dep[ports.WatcherFactory](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, src, encoder, store, log, watchers), nil
}
