package scan

import "github.com/portslayer/portslayer/pkg/model"

// ProtocolFilter narrows a port list to one protocol. It is pure view
// state: filtering never mutates the underlying records.
type ProtocolFilter int

const (
	FilterAll ProtocolFilter = iota
	FilterTCP
	FilterUDP
)

func (f ProtocolFilter) Label() string {
	switch f {
	case FilterTCP:
		return "TCP"
	case FilterUDP:
		return "UDP"
	}
	return "All"
}

// Next cycles All → TCP → UDP → All.
func (f ProtocolFilter) Next() ProtocolFilter {
	return (f + 1) % 3
}

func (f ProtocolFilter) matches(p model.Protocol) bool {
	switch f {
	case FilterTCP:
		return p == model.ProtocolTCP
	case FilterUDP:
		return p == model.ProtocolUDP
	}
	return true
}

// Filter returns the records matching f, preserving order.
func Filter(records []model.PortRecord, f ProtocolFilter) []model.PortRecord {
	if f == FilterAll {
		return append([]model.PortRecord(nil), records...)
	}
	var out []model.PortRecord
	for _, rec := range records {
		if f.matches(rec.Protocol) {
			out = append(out, rec)
		}
	}
	return out
}

// TotalPages reports how many pages a list of total items spans.
// An empty list still has one (empty) page.
func TotalPages(total, pageSize int) int {
	if total == 0 || pageSize == 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// Page returns the zero-based page of records; out-of-range pages are
// empty, not an error.
func Page(records []model.PortRecord, page, pageSize int) []model.PortRecord {
	if pageSize <= 0 || page < 0 {
		return nil
	}
	start := page * pageSize
	if start >= len(records) {
		return nil
	}
	end := min(start+pageSize, len(records))
	return append([]model.PortRecord(nil), records[start:end]...)
}
