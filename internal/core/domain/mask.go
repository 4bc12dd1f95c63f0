package domain

// Mask is a fixed-size grayscale raster describing which pixels are lit
// during one projector pass. Intensity 0 means dark; any non-zero value is
// considered lit for overlap purposes.
//
// Masks are immutable once built. Composition helpers always allocate a new
// mask and never modify their receivers.
type Mask struct {
	Width  int
	Height int
	// Pix holds row-major intensities, one byte per pixel.
	Pix []uint8
}

// NewMask creates an all-dark mask of the given dimensions.
func NewMask(width, height int) *Mask {
	return &Mask{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// At returns the intensity at (x, y). The coordinates must be in bounds.
func (m *Mask) At(x, y int) uint8 {
	return m.Pix[y*m.Width+x]
}

// Set writes the intensity at (x, y). It is intended for mask construction;
// masks handed to the optimizer must not be mutated afterwards.
func (m *Mask) Set(x, y int, v uint8) {
	m.Pix[y*m.Width+x] = v
}

// FillRect sets every pixel in the half-open rectangle [x0,x1)x[y0,y1) to v.
func (m *Mask) FillRect(x0, y0, x1, y1 int, v uint8) {
	for y := y0; y < y1; y++ {
		row := m.Pix[y*m.Width : y*m.Width+m.Width]
		for x := x0; x < x1; x++ {
			row[x] = v
		}
	}
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	c := &Mask{Width: m.Width, Height: m.Height, Pix: make([]uint8, len(m.Pix))}
	copy(c.Pix, m.Pix)
	return c
}

// Union returns a new mask holding the pixel-wise maximum of m and o.
// Both masks must share the same dimensions.
func (m *Mask) Union(o *Mask) *Mask {
	u := m.Clone()
	for i, v := range o.Pix {
		if v > u.Pix[i] {
			u.Pix[i] = v
		}
	}
	return u
}

// Overlaps reports whether any pixel is lit in both m and o.
// Both masks must share the same dimensions.
func (m *Mask) Overlaps(o *Mask) bool {
	for i, v := range m.Pix {
		if v != 0 && o.Pix[i] != 0 {
			return true
		}
	}
	return false
}

// Equal reports whether both masks have identical dimensions and pixels.
func (m *Mask) Equal(o *Mask) bool {
	if m.Width != o.Width || m.Height != o.Height {
		return false
	}
	for i, v := range m.Pix {
		if o.Pix[i] != v {
			return false
		}
	}
	return true
}
