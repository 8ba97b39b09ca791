package scan

import (
	"strconv"
	"strings"

	"github.com/portslayer/portslayer/pkg/model"
)

// ParseSS converts raw `ss -tlnpH` / `ss -ulnpH` output into port
// records. Lines that do not yield an address:port pair (headers,
// truncated output) are dropped; that is expected, not an error.
func ParseSS(output string, proto model.Protocol) []model.PortRecord {
	var records []model.PortRecord
	for line := range strings.Lines(output) {
		if rec, ok := parseSSLine(line, proto); ok {
			records = append(records, rec)
		}
	}
	return records
}

// parseSSLine parses one line of ss output, e.g.:
//
//	LISTEN  0  128  0.0.0.0:8080  0.0.0.0:*  users:(("node",pid=1234,fd=5))
//	LISTEN  0  4096       *:8069        *:*
//
// The users:((...)) section is optional; without it the record carries
// an unknown owner. Unprivileged ss omits the section for sockets owned
// by other users, and Docker-proxied ports never show it.
func parseSSLine(line string, proto model.Protocol) (model.PortRecord, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return model.PortRecord{}, false
	}

	addr, port, ok := extractAddrPort(line)
	if !ok {
		return model.PortRecord{}, false
	}

	owner, ok := extractOwner(line)
	if !ok {
		owner = model.UnknownOwner()
	}

	return model.PortRecord{
		Protocol:  proto,
		Port:      port,
		LocalAddr: addr,
		Owner:     owner,
	}, true
}

// extractAddrPort scans whitespace-delimited fields for the local
// socket address. A field qualifies when it looks like an address
// (contains '.', '[', "::" or starts with '*'); the port is whatever
// follows the last ':'. The remote-address field always carries "*" as
// its port, which is how it gets skipped.
func extractAddrPort(line string) (string, int, bool) {
	for _, field := range strings.Fields(line) {
		isAddr := strings.Contains(field, ".") ||
			strings.Contains(field, "[") ||
			strings.Contains(field, "::") ||
			strings.HasPrefix(field, "*")
		if !isAddr {
			continue
		}

		colon := strings.LastIndex(field, ":")
		if colon == -1 {
			continue
		}
		portStr := field[colon+1:]
		if portStr == "*" {
			continue
		}

		port, err := strconv.Atoi(portStr)
		if err != nil || port <= 0 || port > 65535 {
			continue
		}
		return cleanAddress(field[:colon]), port, true
	}
	return "", 0, false
}

// cleanAddress strips IPv6 brackets and %interface suffixes and maps
// the bare wildcard to 0.0.0.0, e.g. "127.0.0.53%lo" → "127.0.0.53".
func cleanAddress(addr string) string {
	addr = strings.TrimPrefix(addr, "[")
	addr = strings.TrimSuffix(addr, "]")
	if i := strings.Index(addr, "%"); i != -1 {
		addr = addr[:i]
	}
	if addr == "*" {
		return "0.0.0.0"
	}
	return addr
}

// extractOwner pulls the process identity out of a
// users:(("name",pid=1234,fd=5)) section. A missing or malformed
// section is not a parse failure for the line; the caller substitutes
// the unknown owner.
func extractOwner(line string) (model.Owner, bool) {
	start := strings.Index(line, "users:((")
	if start == -1 {
		return model.Owner{}, false
	}
	section := line[start:]

	nameStart := strings.Index(section, `(("`)
	if nameStart == -1 {
		return model.Owner{}, false
	}
	nameStart += 3
	nameLen := strings.Index(section[nameStart:], `"`)
	if nameLen == -1 {
		return model.Owner{}, false
	}
	name := section[nameStart : nameStart+nameLen]

	pidStart := strings.Index(section, "pid=")
	if pidStart == -1 {
		return model.Owner{}, false
	}
	pidStart += len("pid=")
	pidEnd := pidStart
	for pidEnd < len(section) && section[pidEnd] >= '0' && section[pidEnd] <= '9' {
		pidEnd++
	}
	pid, err := strconv.Atoi(section[pidStart:pidEnd])
	if err != nil || pid <= 0 {
		return model.Owner{}, false
	}

	return model.Owner{PID: pid, Name: name}, true
}
