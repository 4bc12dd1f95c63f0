package optimizer

import (
	"fmt"

	"go.trai.ch/dose/internal/core/domain"
	"go.trai.ch/zerr"
)

// Namer allocates composite mask file names. Each layer owns its own Namer,
// which makes names unique across groups and layers without shared state,
// and keeps layer optimization free to run in parallel.
type Namer struct {
	layer int
	seq   int
}

// NewNamer creates a Namer for the given layer index.
func NewNamer(layer int) *Namer {
	return &Namer{layer: layer}
}

// Next returns a fresh composite file name.
func (n *Namer) Next() string {
	n.seq++
	return fmt.Sprintf("layer%d%s%d.png", n.layer, domain.CompositeMarker, n.seq)
}

// OptimizeLayer rewrites one layer's image settings into the minimal pass
// sequence. It returns the new settings list and the masks created for
// composite passes, keyed by their fresh names. Passthrough passes keep
// their original setting and contribute no new masks.
func OptimizeLayer(
	settings []domain.ImageSetting,
	images map[string]*domain.Mask,
	namer *Namer,
) ([]domain.ImageSetting, map[string]*domain.Mask, error) {
	if len(settings) == 0 {
		return nil, nil, nil
	}

	optimized := make([]domain.ImageSetting, 0, len(settings))
	newImages := make(map[string]*domain.Mask)

	for _, group := range GroupBySettings(settings) {
		entries := make([]Entry, 0, len(group.Settings))
		bySource := make(map[string]domain.ImageSetting, len(group.Settings))
		for _, s := range group.Settings {
			name := s.FileName()
			mask, ok := images[name]
			if !ok {
				return nil, nil, zerr.With(zerr.Wrap(domain.ErrMaskNotFound, "referenced by a setting but not loaded"), "image", name)
			}
			exposure, err := s.Exposure()
			if err != nil {
				return nil, nil, err
			}
			entries = append(entries, Entry{Name: name, Mask: mask, Exposure: exposure})
			bySource[name] = s
		}

		passes, err := Schedule(entries)
		if err != nil {
			return nil, nil, err
		}

		for _, pass := range passes {
			if pass.Mask == nil {
				optimized = append(optimized, bySource[pass.Source])
				continue
			}
			name := namer.Next()
			newImages[name] = pass.Mask
			optimized = append(optimized, group.Settings[0].WithPass(name, pass.Exposure))
		}
	}

	if len(newImages) == 0 {
		newImages = nil
	}
	return optimized, newImages, nil
}
