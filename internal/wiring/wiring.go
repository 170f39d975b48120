// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/bale/internal/adapters/archive"
	_ "go.trai.ch/bale/internal/adapters/config"
	_ "go.trai.ch/bale/internal/adapters/fs"
	_ "go.trai.ch/bale/internal/adapters/logger"
	_ "go.trai.ch/bale/internal/adapters/pip"
	_ "go.trai.ch/bale/internal/adapters/shell"
	_ "go.trai.ch/bale/internal/adapters/state"
	_ "go.trai.ch/bale/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/bale/internal/adapters/venv"
	// Register app, engine and bootstrap nodes.
	_ "go.trai.ch/bale/internal/app"
	_ "go.trai.ch/bale/internal/bootstrap"
	_ "go.trai.ch/bale/internal/engine/bundler"
)
