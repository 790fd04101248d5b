package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vitemap/internal/core/ports"
)

const (
	// LoaderNodeID is the unique identifier for the manifest loader Graft node.
	LoaderNodeID graft.ID = "adapter.fs.loader"
	// VerifierNodeID is the unique identifier for the output verifier Graft node.
	VerifierNodeID graft.ID = "adapter.fs.verifier"
)

func init() {
	graft.Register(graft.Node[ports.ManifestLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestLoader, error) {
			return NewLoader("."), nil
		},
	})

	graft.Register(graft.Node[ports.Verifier]{
		ID:        VerifierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Verifier, error) {
			return NewVerifier(), nil
		},
	})
}
