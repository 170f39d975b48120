package state

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/bale/internal/adapters/fs"
	"go.trai.ch/bale/internal/core/ports"
)

// NodeID is the unique identifier for the bundle info store Graft node.
const NodeID graft.ID = "adapter.bundle_info_store"

func init() {
	graft.Register(graft.Node[ports.BundleInfoStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.BundleInfoStore, error) {
			return NewStore(filepath.Join(fs.DistDirName, Filename))
		},
	})
}
