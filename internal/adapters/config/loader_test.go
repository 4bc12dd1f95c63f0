package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dose/internal/adapters/config"
	"go.trai.ch/dose/internal/core/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o644)
	require.NoError(t, err)
}

func TestLoader_NoFileYieldsDefaults(t *testing.T) {
	cfg, err := config.NewLoader().Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultCanvasWidth, cfg.CanvasWidth)
	assert.Equal(t, domain.DefaultCanvasHeight, cfg.CanvasHeight)
	assert.Equal(t, domain.OptimizedSuffix, cfg.OutputSuffix)
	assert.Positive(t, cfg.Workers)
}

func TestLoader_FullFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
canvas:
  width: 1440
  height: 2560
workers: 2
output_suffix: _done
`)

	cfg, err := config.NewLoader().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 1440, cfg.CanvasWidth)
	assert.Equal(t, 2560, cfg.CanvasHeight)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "_done", cfg.OutputSuffix)
}

func TestLoader_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "workers: 3\n")

	cfg, err := config.NewLoader().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, domain.DefaultCanvasWidth, cfg.CanvasWidth)
	assert.Equal(t, domain.OptimizedSuffix, cfg.OutputSuffix)
}

func TestLoader_FindsFileInParent(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "workers: 5\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	cfg, err := config.NewLoader().Load(nested)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Workers)
}

func TestLoader_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "Malformed YAML",
			content: "canvas: [unclosed",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "Canvas Width Without Height",
			content: "canvas:\n  width: 1440\n",
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name:    "Negative Workers",
			content: "workers: -1\n",
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name:    "Negative Canvas",
			content: "canvas:\n  width: -1\n  height: 100\n",
			wantErr: domain.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			_, err := config.NewLoader().Load(dir)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
