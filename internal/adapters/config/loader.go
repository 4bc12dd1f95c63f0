// Package config provides the configuration loader for dose.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/dose/internal/core/domain"
	"go.trai.ch/dose/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using an optional YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load walks up from cwd looking for dose.yaml and merges it over the
// defaults. No file anywhere up the tree yields the plain defaults.
func (l *Loader) Load(cwd string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path, found, err := l.findConfig(cwd)
	if err != nil {
		return domain.Config{}, err
	}
	if !found {
		return cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // Path discovered from trusted directory walk
	if err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var file doseFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	if file.Canvas.Width != 0 || file.Canvas.Height != 0 {
		if file.Canvas.Width <= 0 || file.Canvas.Height <= 0 {
			canvasErr := zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "canvas dimensions must be positive"), "field", "canvas")
			return domain.Config{}, zerr.With(canvasErr, "path", path)
		}
		cfg.CanvasWidth = file.Canvas.Width
		cfg.CanvasHeight = file.Canvas.Height
	}
	if file.Workers < 0 {
		workersErr := zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "workers must not be negative"), "field", "workers")
		return domain.Config{}, zerr.With(workersErr, "path", path)
	}
	if file.Workers > 0 {
		cfg.Workers = file.Workers
	}
	if file.OutputSuffix != "" {
		cfg.OutputSuffix = file.OutputSuffix
	}
	return cfg, nil
}

func (l *Loader) findConfig(cwd string) (string, bool, error) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", false, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", candidate)
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false, nil
		}
		currentDir = parentDir
	}
}
