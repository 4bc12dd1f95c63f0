package jsondoc

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/dose/internal/core/ports"
)

// NodeID is the unique identifier for the settings codec Graft node.
const NodeID graft.ID = "adapter.settings_codec"

func init() {
	graft.Register(graft.Node[ports.SettingsCodec]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SettingsCodec, error) {
			return NewCodec(), nil
		},
	})
}
