// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/reqsync/internal/adapters/config"
	_ "go.trai.ch/reqsync/internal/adapters/fs"
	_ "go.trai.ch/reqsync/internal/adapters/logger"
	_ "go.trai.ch/reqsync/internal/adapters/pyproject"
	_ "go.trai.ch/reqsync/internal/adapters/source"
	_ "go.trai.ch/reqsync/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/reqsync/internal/app"
)
