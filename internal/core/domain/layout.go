// Package domain holds the core types of the dose optimizer: mask rasters,
// the ordered settings document model, and the archive layout contract.
package domain

import (
	"path/filepath"
	"strings"
)

const (
	// SettingsFileName is the settings document at the archive root.
	SettingsFileName = "print_settings.json"

	// SlicesDirName is the image-store sub-path holding mask files.
	SlicesDirName = "slices"

	// OptimizedSuffix is inserted before the extension of the default
	// output archive path.
	OptimizedSuffix = "_optimized"

	// CompositeMarker appears in every file name the optimizer creates,
	// so optimizer output is distinguishable from source masks.
	CompositeMarker = "_opt_"

	// ConfigFileName is the optional tool configuration file.
	ConfigFileName = "dose.yaml"

	// DefaultCanvasWidth is the projector canvas width in pixels.
	DefaultCanvasWidth = 2560

	// DefaultCanvasHeight is the projector canvas height in pixels.
	DefaultCanvasHeight = 1600

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultOutputPath derives the output archive path from the input path by
// inserting suffix before the extension: job.zip -> job_optimized.zip.
func DefaultOutputPath(inputPath, suffix string) string {
	ext := filepath.Ext(inputPath)
	stem := strings.TrimSuffix(inputPath, ext)
	return stem + suffix + ext
}
