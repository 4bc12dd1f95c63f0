// Package raster implements the mask codec over PNG grayscale images.
package raster

import (
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	"go.trai.ch/dose/internal/core/domain"
	"go.trai.ch/dose/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.MaskCodec = (*Codec)(nil)

// Codec decodes and encodes masks as PNG. Decoding accepts any raster
// format imaging understands and collapses it to 8-bit intensity; encoding
// always produces grayscale PNG, the canonical mask format.
type Codec struct{}

// NewCodec creates a new Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Decode reads one mask from r.
func (c *Codec) Decode(r io.Reader) (*domain.Mask, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, zerr.Wrap(domain.ErrMaskDecodeFailed, err.Error())
	}

	bounds := img.Bounds()
	mask := domain.NewMask(bounds.Dx(), bounds.Dy())
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			mask.Pix[i] = g.Y
			i++
		}
	}
	return mask, nil
}

// Encode writes m to w as grayscale PNG.
func (c *Codec) Encode(w io.Writer, m *domain.Mask) error {
	img := &image.Gray{
		Pix:    m.Pix,
		Stride: m.Width,
		Rect:   image.Rect(0, 0, m.Width, m.Height),
	}
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return zerr.Wrap(domain.ErrMaskEncodeFailed, err.Error())
	}
	return nil
}
