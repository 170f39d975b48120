package bundler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bale/internal/adapters/archive"
	"go.trai.ch/bale/internal/adapters/fs"
	"go.trai.ch/bale/internal/adapters/logger"
	"go.trai.ch/bale/internal/adapters/pip"
	"go.trai.ch/bale/internal/adapters/state"
	"go.trai.ch/bale/internal/adapters/telemetry/progrock"
	"go.trai.ch/bale/internal/core/ports"
)

// NodeID is the unique identifier for the bundler engine Graft node.
const NodeID graft.ID = "engine.bundler"

func init() {
	graft.Register(graft.Node[*Bundler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			pip.FetcherNodeID,
			pip.HasherNodeID,
			pip.BuilderNodeID,
			archive.NodeID,
			fs.WorkspaceNodeID,
			state.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Bundler, error) {
			fetcher, err := graft.Dep[ports.ArtifactFetcher](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.ArtifactHasher](ctx)
			if err != nil {
				return nil, err
			}
			builder, err := graft.Dep[ports.ProjectBuilder](ctx)
			if err != nil {
				return nil, err
			}
			packager, err := graft.Dep[ports.Packager](ctx)
			if err != nil {
				return nil, err
			}
			workspace, err := graft.Dep[ports.Workspace](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.BundleInfoStore](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(fetcher, hasher, builder, packager, workspace, store, telemetry, log), nil
		},
	})
}
