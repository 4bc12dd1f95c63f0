package ziparchive

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dose/internal/core/ports"
)

const (
	// OpenerNodeID is the unique identifier for the archive opener Graft node.
	OpenerNodeID graft.ID = "adapter.archive_opener"

	// CreatorNodeID is the unique identifier for the archive creator Graft node.
	CreatorNodeID graft.ID = "adapter.archive_creator"
)

func init() {
	graft.Register(graft.Node[ports.ArchiveOpener]{
		ID:        OpenerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArchiveOpener, error) {
			return NewOpener(), nil
		},
	})

	graft.Register(graft.Node[ports.ArchiveCreator]{
		ID:        CreatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArchiveCreator, error) {
			return NewCreator(), nil
		},
	})
}
