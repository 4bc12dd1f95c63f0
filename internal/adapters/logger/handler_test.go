package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dose/internal/adapters/logger"
)

func newTestHandler(t *testing.T, opts *slog.HandlerOptions) (*logger.PrettyHandler, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return logger.NewPrettyHandler(buf, opts), buf
}

func TestPrettyHandler_Enabled(t *testing.T) {
	h, _ := newTestHandler(t, &slog.HandlerOptions{Level: slog.LevelWarn})

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestPrettyHandler_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(*slog.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(lg *slog.Logger) { lg.Info("wrote optimized archive") },
			goldenName: "handler_info",
		},
		{
			name:       "warn",
			log:        func(lg *slog.Logger) { lg.Warn("mask never referenced") },
			goldenName: "handler_warn",
		},
		{
			name:       "error",
			log:        func(lg *slog.Logger) { lg.Error("archive write failed") },
			goldenName: "handler_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, buf := newTestHandler(t, nil)
			tt.log(slog.New(h))

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	h, buf := newTestHandler(t, nil)
	lg := slog.New(h)

	lg.Info("loaded masks", "count", 3, "archive", "job.zip")

	assert.Equal(t, "loaded masks count=3 archive=job.zip\n", buf.String())
}

func TestPrettyHandler_WithAttrsAndGroup(t *testing.T) {
	h, buf := newTestHandler(t, nil)
	lg := slog.New(h).WithGroup("archive").With("path", "job.zip")

	lg.Info("opened")

	require.Contains(t, buf.String(), "archive.path=job.zip")
}
