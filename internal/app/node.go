package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vitemap/internal/adapters/cache"     //nolint:depguard // Wired in app layer
	"go.trai.ch/vitemap/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/vitemap/internal/adapters/detector"  //nolint:depguard // Wired in app layer
	"go.trai.ch/vitemap/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/vitemap/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/vitemap/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/vitemap/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cache.NodeID,
			config.NodeID,
			detector.NodeID,
			fs.VerifierNodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	manifests, err := graft.Dep[ports.ManifestCache](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	det, err := graft.Dep[ports.DevServerDetector](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[ports.Verifier](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(manifests, loader, det, verifier, tracer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
