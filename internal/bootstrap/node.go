package bootstrap

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bale/internal/adapters/logger"
	"go.trai.ch/bale/internal/adapters/shell"
	"go.trai.ch/bale/internal/adapters/venv"
	"go.trai.ch/bale/internal/core/ports"
)

// NodeID is the unique identifier for the bootstrap Graft node.
const NodeID graft.ID = "bootstrap"

func init() {
	graft.Register(graft.Node[*Bootstrap]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, venv.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Bootstrap, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			env, err := graft.Dep[ports.EnvProvisioner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(runner, env, log), nil
		},
	})
}
