package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bale/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/bale/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/bale/internal/adapters/telemetry/progrock"
	"go.trai.ch/bale/internal/bootstrap"
	"go.trai.ch/bale/internal/core/ports"
	"go.trai.ch/bale/internal/engine/bundler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			bundler.NodeID,
			bootstrap.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			b, err := graft.Dep[*bundler.Bundler](ctx)
			if err != nil {
				return nil, err
			}
			boot, err := graft.Dep[*bootstrap.Bootstrap](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, b, boot), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       application,
		Logger:    log,
		Telemetry: telemetry,
	}, nil
}
