package domain

import "runtime"

// Config holds the tool configuration. Every field has a working default;
// the config file is optional.
type Config struct {
	// CanvasWidth and CanvasHeight are the projector canvas dimensions.
	// Every mask in a job must match them exactly.
	CanvasWidth  int
	CanvasHeight int

	// Workers bounds per-layer parallelism during optimization.
	Workers int

	// OutputSuffix is inserted before the extension of the default output
	// archive path.
	OutputSuffix string
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		CanvasWidth:  DefaultCanvasWidth,
		CanvasHeight: DefaultCanvasHeight,
		Workers:      runtime.NumCPU(),
		OutputSuffix: OptimizedSuffix,
	}
}
