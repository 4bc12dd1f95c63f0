package ports

import (
	"io"

	"go.trai.ch/dose/internal/core/domain"
)

// SettingsCodec decodes and encodes the settings document. Unknown fields
// must survive a decode/encode round trip byte-exact, in document order.
//
//go:generate mockgen -source=codec.go -destination=mocks/mock_codec.go -package=mocks
type SettingsCodec interface {
	// Decode parses the settings document.
	Decode(data []byte) (domain.PrintJob, error)

	// Encode serializes the settings document.
	Encode(job domain.PrintJob) ([]byte, error)
}

// MaskCodec decodes and encodes mask rasters in the canonical image format.
type MaskCodec interface {
	// Decode reads one mask.
	Decode(r io.Reader) (*domain.Mask, error)

	// Encode writes one mask.
	Encode(w io.Writer, m *domain.Mask) error
}
