package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/vitemap/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/vitemap/internal/core/ports"
)

// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

// InstrumentationName names the tracer used for all spans.
const InstrumentationName = "vitemap"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tp := sdktrace.NewTracerProvider(
				sdktrace.WithSpanProcessor(NewLogBridge(log)),
			)
			return NewOTelTracerFromProvider(tp, InstrumentationName), nil
		},
	})
}
