package telemetry_test

import (
	"context"
	"strings"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.trai.ch/dose/internal/adapters/telemetry"
	"go.trai.ch/dose/internal/core/ports/mocks"
)

func TestBridge_OnEnd(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	var logged string
	mockLogger.EXPECT().Info(gomock.Any()).Do(func(msg string) {
		logged = msg
	}).Times(1)

	bridge := telemetry.NewBridge(mockLogger)

	tp := sdktrace.NewTracerProvider()
	tracer := tp.Tracer("test")
	_, span := tracer.Start(context.Background(), "optimize_job")
	span.End()

	roSpan, ok := span.(sdktrace.ReadOnlySpan)
	require.True(t, ok)
	bridge.OnEnd(roSpan)

	assert.True(t, strings.HasPrefix(logged, "optimize_job completed in "), "got %q", logged)
}

func TestBridge_OnStart(t *testing.T) {
	ctrl := gomock.NewController(t)

	// OnStart must not log anything.
	bridge := telemetry.NewBridge(mocks.NewMockLogger(ctrl))

	tp := sdktrace.NewTracerProvider()
	tracer := tp.Tracer("test")
	ctx, span := tracer.Start(context.Background(), "optimize_job")
	defer span.End()

	if rwSpan, ok := span.(sdktrace.ReadWriteSpan); ok {
		bridge.OnStart(ctx, rwSpan)
	}
}

func TestBridge_ShutdownAndForceFlush(t *testing.T) {
	ctrl := gomock.NewController(t)
	bridge := telemetry.NewBridge(mocks.NewMockLogger(ctrl))

	assert.NoError(t, bridge.Shutdown(context.Background()))
	assert.NoError(t, bridge.ForceFlush(context.Background()))
}
