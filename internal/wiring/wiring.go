// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/dose/internal/adapters/config"
	_ "go.trai.ch/dose/internal/adapters/jsondoc"
	_ "go.trai.ch/dose/internal/adapters/logger"
	_ "go.trai.ch/dose/internal/adapters/raster"
	_ "go.trai.ch/dose/internal/adapters/ziparchive"
	// Register app nodes.
	_ "go.trai.ch/dose/internal/app"
)
