package optimizer

import (
	"slices"

	"go.trai.ch/dose/internal/core/domain"
	"go.trai.ch/zerr"
)

// Entry is one scheduler input: a named mask and its requested exposure.
type Entry struct {
	Name     string
	Mask     *domain.Mask
	Exposure int64
}

// Pass is one scheduler output: a single projector exposure. A composite
// pass carries a newly built mask; a passthrough pass carries none and
// references its source entry by name.
type Pass struct {
	// Source is the original file name for passthrough passes; empty for
	// composite passes.
	Source string

	// Mask is the newly composed mask; nil for passthrough passes.
	Mask *domain.Mask

	// Exposure is the pass duration in milliseconds.
	Exposure int64
}

// Schedule computes the minimal pass sequence delivering the same per-pixel
// dose as exposing each entry's mask for its own duration, within one
// compatibility group:
//
//   - a single entry passes through unchanged;
//   - zero-duration masks are folded into the first emitted pass;
//   - overlapping masks are never merged, only re-encoded one pass each;
//   - disjoint masks collapse into one pass per distinct exposure
//     threshold, each pass unioning every mask still owing exposure.
//
// A negative exposure is a precondition violation.
func Schedule(entries []Entry) ([]Pass, error) {
	for _, e := range entries {
		if e.Exposure < 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidExposure, "negative duration"), "image", e.Name)
		}
	}

	if len(entries) == 0 {
		return nil, nil
	}
	if len(entries) == 1 {
		e := entries[0]
		return []Pass{{Source: e.Name, Exposure: e.Exposure}}, nil
	}

	var zero, active []Entry
	for _, e := range entries {
		if e.Exposure == 0 {
			zero = append(zero, e)
		} else {
			active = append(active, e)
		}
	}

	// Pixels of zero-duration masks must still appear in some pass. With
	// nothing else to fold them into, the union at duration 0 is the
	// whole schedule.
	if len(active) == 0 {
		return []Pass{{Mask: unionAll(zero, nil), Exposure: 0}}, nil
	}

	if anyOverlap(active) {
		return scheduleOverlapping(active, zero), nil
	}

	return scheduleDisjoint(active, zero), nil
}

// anyOverlap reports whether any two masks share a lit pixel.
func anyOverlap(entries []Entry) bool {
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			if entries[i].Mask.Overlaps(entries[j].Mask) {
				return true
			}
		}
	}
	return false
}

// scheduleOverlapping emits one pass per mask, durations unchanged. There
// is no compositional rule for re-dosing arbitrary overlapping regions, so
// merging is refused rather than risking incorrect cumulative exposure.
// Each mask is still re-encoded as a fresh composite so all emitted passes
// are uniformly optimizer output.
func scheduleOverlapping(active, zero []Entry) []Pass {
	passes := make([]Pass, 0, len(active))
	for i, e := range active {
		mask := e.Mask.Clone()
		if i == 0 {
			mask = unionAll(zero, mask)
		}
		passes = append(passes, Pass{Mask: mask, Exposure: e.Exposure})
	}
	return passes
}

// scheduleDisjoint performs the delta decomposition: sort by exposure
// ascending, then emit one pass per distinct exposure threshold whose mask
// unions every entry still owing exposure and whose duration is the
// increment over the previous threshold.
func scheduleDisjoint(active, zero []Entry) []Pass {
	slices.SortStableFunc(active, func(a, b Entry) int {
		switch {
		case a.Exposure < b.Exposure:
			return -1
		case a.Exposure > b.Exposure:
			return 1
		default:
			return 0
		}
	})

	var passes []Pass
	var emitted int64
	for len(active) > 0 {
		threshold := active[0].Exposure

		mask := unionAll(active, nil)
		if len(passes) == 0 {
			mask = unionAll(zero, mask)
		}
		passes = append(passes, Pass{Mask: mask, Exposure: threshold - emitted})
		emitted = threshold

		next := active[:0]
		for _, e := range active {
			if e.Exposure > threshold {
				next = append(next, e)
			}
		}
		active = next
	}
	return passes
}

// unionAll folds the entries' masks into base. A nil base starts from the
// first entry's mask. Returns nil when there is nothing to union.
func unionAll(entries []Entry, base *domain.Mask) *domain.Mask {
	u := base
	for _, e := range entries {
		if u == nil {
			u = e.Mask.Clone()
			continue
		}
		u = u.Union(e.Mask)
	}
	return u
}
