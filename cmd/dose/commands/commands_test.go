package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dose/cmd/dose/commands"
	"go.trai.ch/dose/internal/app"
	"go.trai.ch/dose/internal/build"
)

type mockApp struct {
	optimizeFunc func(ctx context.Context, inputPath string, opts app.OptimizeOptions) (string, error)
}

func (m *mockApp) Optimize(ctx context.Context, inputPath string, opts app.OptimizeOptions) (string, error) {
	if m.optimizeFunc != nil {
		return m.optimizeFunc(ctx, inputPath, opts)
	}
	return "", nil
}

func TestCommands_Optimize(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedInput string
		var capturedOpts app.OptimizeOptions
		called := false

		mock := &mockApp{
			optimizeFunc: func(_ context.Context, inputPath string, opts app.OptimizeOptions) (string, error) {
				capturedInput = inputPath
				capturedOpts = opts
				called = true
				return "out.zip", nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"optimize", "job.zip", "--output", "custom.zip", "--workers", "3"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "job.zip", capturedInput)
		assert.Equal(t, "custom.zip", capturedOpts.OutputPath)
		assert.Equal(t, 3, capturedOpts.Workers)
	})

	t.Run("json flag switches log format", func(t *testing.T) {
		var capturedOpts app.OptimizeOptions

		mock := &mockApp{
			optimizeFunc: func(_ context.Context, _ string, opts app.OptimizeOptions) (string, error) {
				capturedOpts = opts
				return "out.zip", nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"optimize", "job.zip", "--json"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, capturedOpts.JSON)
	})

	t.Run("prints output path on success", func(t *testing.T) {
		mock := &mockApp{
			optimizeFunc: func(_ context.Context, _ string, _ app.OptimizeOptions) (string, error) {
				return "job_optimized.zip", nil
			},
		}

		cli := commands.New(mock)
		out := new(bytes.Buffer)
		cli.SetOutput(out, new(bytes.Buffer))
		cli.SetArgs([]string{"optimize", "job.zip"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "job_optimized.zip\n", out.String())
	})

	t.Run("short flags", func(t *testing.T) {
		var capturedOpts app.OptimizeOptions

		mock := &mockApp{
			optimizeFunc: func(_ context.Context, _ string, opts app.OptimizeOptions) (string, error) {
				capturedOpts = opts
				return "out.zip", nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"optimize", "job.zip", "-o", "short.zip", "-w", "1"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "short.zip", capturedOpts.OutputPath)
		assert.Equal(t, 1, capturedOpts.Workers)
	})

	t.Run("returns error on optimize failure", func(t *testing.T) {
		mock := &mockApp{
			optimizeFunc: func(_ context.Context, _ string, _ app.OptimizeOptions) (string, error) {
				return "", errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"optimize", "job.zip"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects missing archive argument", func(t *testing.T) {
		mock := &mockApp{
			optimizeFunc: func(_ context.Context, _ string, _ app.OptimizeOptions) (string, error) {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"optimize"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
	})
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})
	out := new(bytes.Buffer)
	cli.SetOutput(out, new(bytes.Buffer))
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "dose version "+build.Version)
	assert.Contains(t, out.String(), build.Commit)
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{})
	out := new(bytes.Buffer)
	cli.SetOutput(out, new(bytes.Buffer))
	cli.SetArgs([]string{"--version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "dose version")
}
