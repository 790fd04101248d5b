package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vitemap/internal/adapters/fs"       //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/vitemap/internal/adapters/logger"   //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/vitemap/internal/adapters/manifest" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/vitemap/internal/core/ports"
)

// NodeID is the unique identifier for the manifest cache Graft node.
// The node is cacheable, so a single Store serves the whole process.
const NodeID graft.ID = "adapter.manifest_cache"

func init() {
	graft.Register(graft.Node[ports.ManifestCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.LoaderNodeID,
			manifest.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.ManifestCache, error) {
			loader, err := graft.Dep[ports.ManifestLoader](ctx)
			if err != nil {
				return nil, err
			}

			parser, err := graft.Dep[ports.ManifestParser](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewStore(loader, parser, log), nil
		},
	})
}
