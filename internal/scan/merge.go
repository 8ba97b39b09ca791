package scan

import (
	"sort"

	"github.com/portslayer/portslayer/pkg/model"
)

// Merge reconciles the two source views into one deduplicated list
// keyed by (protocol, port).
//
// Within the primary (ss) set a record with a known owner replaces an
// earlier one without; the secondary (/proc/net) set only fills keys
// the primary missed and never downgrades it. The result is sorted by
// (port, protocol), so it is a pure function of content, not of
// insertion order.
func Merge(primary, secondary []model.PortRecord) []model.PortRecord {
	byKey := make(map[model.Key]model.PortRecord, len(primary)+len(secondary))

	for _, rec := range primary {
		existing, ok := byKey[rec.Key()]
		if !ok || (!existing.Owner.Known() && rec.Owner.Known()) {
			byKey[rec.Key()] = rec
		}
	}

	for _, rec := range secondary {
		if _, ok := byKey[rec.Key()]; !ok {
			byKey[rec.Key()] = rec
		}
	}

	merged := make([]model.PortRecord, 0, len(byKey))
	for _, rec := range byKey {
		merged = append(merged, rec)
	}
	sort.Slice(merged, func(i, j int) bool {
		if merged[i].Port != merged[j].Port {
			return merged[i].Port < merged[j].Port
		}
		return merged[i].Protocol < merged[j].Protocol
	})
	return merged
}
