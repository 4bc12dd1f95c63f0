package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.trai.ch/dose/internal/adapters/telemetry"
	"go.trai.ch/dose/internal/core/ports/mocks"
)

func TestOTelTracer_SpansReportThroughBridge(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	var messages []string
	mockLogger.EXPECT().Info(gomock.Any()).Do(func(msg string) {
		messages = append(messages, msg)
	}).AnyTimes()

	telemetry.SetupProvider(telemetry.NewBridge(mockLogger))
	tracer := telemetry.NewOTelTracer("test")

	ctx, span := tracer.Start(context.Background(), "optimize_layer_0")
	assert.NotNil(t, ctx)
	span.SetAttribute("layers", 4)
	span.SetAttribute("archive", "job.zip")
	span.SetAttribute("cached", true)
	span.End()

	found := false
	for _, msg := range messages {
		if strings.HasPrefix(msg, "optimize_layer_0 completed in ") {
			found = true
		}
	}
	assert.True(t, found, "span completion should be logged, got %v", messages)
}

func TestOTelSpan_RecordError(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	telemetry.SetupProvider(telemetry.NewBridge(mockLogger))
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(context.Background(), "failing_phase")
	span.RecordError(errors.New("mask decode failed"))
	span.RecordError(nil) // must be a no-op
	span.End()
}
