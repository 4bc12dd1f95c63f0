// Package optimizer implements the exposure optimization engine: settings
// grouping, mask scheduling, and the per-layer and per-job drivers that
// shrink a print job's pass count without changing per-pixel dose.
package optimizer

import "go.trai.ch/dose/internal/core/domain"

// Group is a maximal run of a layer's image settings sharing identical
// non-exposure fields. Only members of the same group may be merged.
type Group struct {
	// Key is the shared fingerprint of the group's settings.
	Key uint64

	// Settings holds the members in input order.
	Settings []domain.ImageSetting
}

// GroupBySettings partitions settings into compatibility groups. Groups are
// ordered by first occurrence; members keep input order. Exposure duration
// and file name never influence grouping. Equal fingerprints are confirmed
// by field comparison before a setting joins a group, so a hash collision
// splits into separate groups instead of silently merging.
func GroupBySettings(settings []domain.ImageSetting) []Group {
	var groups []Group
	index := make(map[uint64][]int)

	for _, s := range settings {
		key := s.Fingerprint()
		target := -1
		for _, i := range index[key] {
			if groups[i].Settings[0].GroupFieldsEqual(s) {
				target = i
				break
			}
		}
		if target < 0 {
			target = len(groups)
			index[key] = append(index[key], target)
			groups = append(groups, Group{Key: key})
		}
		groups[target].Settings = append(groups[target].Settings, s)
	}
	return groups
}
