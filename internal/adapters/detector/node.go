package detector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vitemap/internal/core/ports"
)

// NodeID is the unique identifier for the dev server detector Graft node.
const NodeID graft.ID = "adapter.detector"

func init() {
	graft.Register(graft.Node[ports.DevServerDetector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DevServerDetector, error) {
			return New(), nil
		},
	})
}
