package raster

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dose/internal/core/ports"
)

// NodeID is the unique identifier for the mask codec Graft node.
const NodeID graft.ID = "adapter.mask_codec"

func init() {
	graft.Register(graft.Node[ports.MaskCodec]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.MaskCodec, error) {
			return NewCodec(), nil
		},
	})
}
