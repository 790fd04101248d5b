package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/vitemap/internal/adapters/telemetry"
	"go.trai.ch/vitemap/internal/core/ports"
)

func setupMonitor() (*tracetest.SpanRecorder, *trace.TracerProvider) {
	sr := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(sr))
	return sr, tp
}

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ ports.Tracer = (*telemetry.NoOpTracer)(nil)
	var _ ports.Span = telemetry.NoOpSpan{}
}

func TestOTelTracer_Start(t *testing.T) {
	sr, tp := setupMonitor()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := telemetry.NewOTelTracerFromProvider(tp, "test-tracer")

	ctx, parent := tracer.Start(context.Background(), "render")
	_, child := tracer.Start(ctx, "manifest.resolve")
	child.End()
	parent.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "manifest.resolve", spans[0].Name())
	assert.Equal(t, "render", spans[1].Name())
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
}

func TestOTelSpan_SetAttribute(t *testing.T) {
	sr, tp := setupMonitor()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := telemetry.NewOTelTracerFromProvider(tp, "test-tracer")
	_, span := tracer.Start(context.Background(), "render")
	span.SetAttribute("location", "dist/manifest.json")
	span.SetAttribute("references", 3)
	span.SetAttribute("count64", int64(4))
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("dev", false)
	span.SetAttribute("entries", []string{"a.js", "b.js"})
	span.SetAttribute("mode", struct{ Name string }{"x"})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.String("location", "dist/manifest.json"),
		attribute.Int("references", 3),
		attribute.Int64("count64", 4),
		attribute.Float64("ratio", 0.5),
		attribute.Bool("dev", false),
		attribute.StringSlice("entries", []string{"a.js", "b.js"}),
		attribute.String("mode", "{x}"),
	}, spans[0].Attributes())
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr, tp := setupMonitor()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := telemetry.NewOTelTracerFromProvider(tp, "test-tracer")
	_, span := tracer.Start(context.Background(), "render")
	span.RecordError(errors.New("unknown entry"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "unknown entry", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestNoOpTracer_Start(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx := context.Background()
	got, span := tracer.Start(ctx, "test-span")
	assert.Equal(t, ctx, got)
	assert.NotNil(t, span)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()
}
