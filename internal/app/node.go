package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dose/internal/adapters/config"
	"go.trai.ch/dose/internal/adapters/jsondoc"
	"go.trai.ch/dose/internal/adapters/logger"
	"go.trai.ch/dose/internal/adapters/raster"
	"go.trai.ch/dose/internal/adapters/ziparchive"
	"go.trai.ch/dose/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"

	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components aggregates the wired application entry points for main.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			ziparchive.OpenerNodeID,
			ziparchive.CreatorNodeID,
			jsondoc.NodeID,
			raster.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	opener, err := graft.Dep[ports.ArchiveOpener](ctx)
	if err != nil {
		return nil, err
	}
	creator, err := graft.Dep[ports.ArchiveCreator](ctx)
	if err != nil {
		return nil, err
	}
	settings, err := graft.Dep[ports.SettingsCodec](ctx)
	if err != nil {
		return nil, err
	}
	masks, err := graft.Dep[ports.MaskCodec](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, opener, creator, settings, masks, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return &Components{App: application, Logger: log}, nil
}
