package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/dose/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// Bridge is a SpanProcessor that reports completed spans to the logger.
// It replaces an exporter: the optimizer has no telemetry backend, but span
// durations are still useful as per-phase progress output.
type Bridge struct {
	logger ports.Logger
}

// NewBridge creates a Bridge reporting to the given logger.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{logger: logger}
}

// OnStart implements sdktrace.SpanProcessor.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the completed span's name and duration.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	duration := s.EndTime().Sub(s.StartTime())
	b.logger.Info(fmt.Sprintf("%s completed in %s", s.Name(), duration.Round(time.Microsecond)))
}

// Shutdown implements sdktrace.SpanProcessor.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

// ForceFlush implements sdktrace.SpanProcessor.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// SetupProvider configures the global OpenTelemetry SDK with the bridge so
// spans started via otel.Tracer are reported to the logger.
func SetupProvider(bridge *Bridge) {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(bridge),
	)
	otel.SetTracerProvider(tp)
}
