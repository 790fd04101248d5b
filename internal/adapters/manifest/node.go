package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vitemap/internal/core/ports"
)

// NodeID is the unique identifier for the manifest parser Graft node.
const NodeID graft.ID = "adapter.manifest_parser"

func init() {
	graft.Register(graft.Node[ports.ManifestParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestParser, error) {
			return NewParser(), nil
		},
	})
}
