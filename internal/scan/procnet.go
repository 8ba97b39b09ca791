package scan

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/portslayer/portslayer/pkg/model"
)

// Socket states as they appear in the st column of /proc/net tables.
// TCP sockets are interesting only in LISTEN; UDP has no LISTEN, a
// bound socket sits in state 07.
const (
	tcpStateListen = "0A"
	udpStateOpen   = "07"
)

// procNetInodeField is the index of the inode column in
// `sl local_address rem_address st tx_queue:rx_queue tr:tm-when retrnsmt uid timeout inode`.
const procNetInodeField = 9

// InodeOwners maps socket inodes to the owning process. It is rebuilt
// from scratch on every kernel-table scan and discarded afterwards; a
// /proc walk is inherently a racy snapshot, so stale entries must not
// outlive the pass that produced them.
type InodeOwners map[uint64]model.Owner

// ParseProcNet decodes one /proc/net/{tcp,tcp6,udp,udp6} table.
// The header line is skipped; rows with fewer than 10 fields or in an
// irrelevant socket state are dropped. Ownership comes from the inode
// column via the supplied map; a zero inode or a missing entry yields
// an unknown owner, never an error.
func ParseProcNet(content string, proto model.Protocol, owners InodeOwners) []model.PortRecord {
	var records []model.PortRecord
	first := true
	for line := range strings.Lines(content) {
		if first {
			first = false
			continue
		}
		if rec, ok := parseProcNetLine(line, proto, owners); ok {
			records = append(records, rec)
		}
	}
	return records
}

func parseProcNetLine(line string, proto model.Protocol, owners InodeOwners) (model.PortRecord, bool) {
	fields := strings.Fields(line)
	if len(fields) < 10 {
		return model.PortRecord{}, false
	}

	state := fields[3]
	if proto == model.ProtocolTCP && state != tcpStateListen {
		return model.PortRecord{}, false
	}
	if proto == model.ProtocolUDP && state != udpStateOpen {
		return model.PortRecord{}, false
	}

	addr, port, ok := parseHexAddress(fields[1])
	if !ok || port == 0 {
		return model.PortRecord{}, false
	}

	owner := model.UnknownOwner()
	if inode, err := strconv.ParseUint(fields[procNetInodeField], 10, 64); err == nil && inode > 0 {
		if o, ok := owners[inode]; ok {
			owner = o
		}
	}

	return model.PortRecord{
		Protocol:  proto,
		Port:      port,
		LocalAddr: addr,
		Owner:     owner,
	}, true
}

// parseHexAddress decodes the HEXADDR:HEXPORT local-address column.
//
//	"00000000:0BB8"                          → ("0.0.0.0", 3000)
//	"0100007F:1538"                          → ("127.0.0.1", 5432)
//	"00000000000000000000000000000000:0050"  → ("[::]", 80)
//
// IPv4 addresses are stored as a host-endian 32-bit value, so the bytes
// come out in reverse order. For IPv6 only the all-zeros and loopback
// encodings get a proper rendering; anything else is abbreviated to
// "[first4...last4]" rather than expanded.
func parseHexAddress(hexAddr string) (string, int, bool) {
	hexPart, portPart, ok := strings.Cut(hexAddr, ":")
	if !ok {
		return "", 0, false
	}

	port, err := strconv.ParseUint(portPart, 16, 16)
	if err != nil {
		return "", 0, false
	}

	switch len(hexPart) {
	case 8:
		ip, err := strconv.ParseUint(hexPart, 16, 32)
		if err != nil {
			return "", 0, false
		}
		addr := fmt.Sprintf("%d.%d.%d.%d",
			ip&0xff, (ip>>8)&0xff, (ip>>16)&0xff, (ip>>24)&0xff)
		return addr, int(port), true
	case 32:
		switch hexPart {
		case "00000000000000000000000000000000":
			return "[::]", int(port), true
		case "00000000000000000000000001000000":
			return "[::1]", int(port), true
		}
		return fmt.Sprintf("[%s...%s]", hexPart[:4], hexPart[28:]), int(port), true
	}
	return "", 0, false
}

// extractSocketInode pulls the inode out of a /proc/<pid>/fd symlink
// target of the form "socket:[22881]".
func extractSocketInode(link string) (uint64, bool) {
	if !strings.HasPrefix(link, "socket:[") || !strings.HasSuffix(link, "]") {
		return 0, false
	}
	inode, err := strconv.ParseUint(link[len("socket:["):len(link)-1], 10, 64)
	if err != nil {
		return 0, false
	}
	return inode, true
}
