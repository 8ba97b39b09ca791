package model

import "fmt"

// Protocol of a listening socket.
type Protocol string

const (
	ProtocolTCP Protocol = "tcp"
	ProtocolUDP Protocol = "udp"
)

// UnknownProcessName is the placeholder used when a socket cannot be
// attributed to a process.
const UnknownProcessName = "unknown"

// Owner identifies the process behind a socket. A zero PID means the
// owner could not be determined (e.g. another user's process seen
// without privileges, or a container socket).
type Owner struct {
	PID  int    `json:"process_id"`
	Name string `json:"process_name"`
}

// UnknownOwner is the owner attached to unattributed sockets.
func UnknownOwner() Owner {
	return Owner{PID: 0, Name: UnknownProcessName}
}

// Known reports whether the owning process was resolved.
func (o Owner) Known() bool { return o.PID > 0 }

// PortRecord is one listening socket: a TCP socket in LISTEN state or a
// bound UDP socket. Records are immutable; scans always produce fresh
// lists.
type PortRecord struct {
	Protocol  Protocol `json:"protocol"`
	Port      int      `json:"port"`
	LocalAddr string   `json:"local_address"` // "0.0.0.0", "127.0.0.1", "[::]", ...
	Owner     Owner    `json:"owner"`
}

// Key is the identity used when merging sources: at most one record per
// (protocol, port) survives a scan.
type Key struct {
	Protocol Protocol
	Port     int
}

func (p PortRecord) Key() Key {
	return Key{Protocol: p.Protocol, Port: p.Port}
}

// String renders "TCP 8080 (0.0.0.0) → node [PID 1234]"; the PID suffix
// is omitted when the owner is unknown.
func (p PortRecord) String() string {
	proto := p.Protocol.Upper()
	if p.Owner.Known() {
		return fmt.Sprintf("%s %d (%s) → %s [PID %d]",
			proto, p.Port, p.LocalAddr, p.Owner.Name, p.Owner.PID)
	}
	return fmt.Sprintf("%s %d (%s) → %s", proto, p.Port, p.LocalAddr, p.Owner.Name)
}

func (pr Protocol) Upper() string {
	switch pr {
	case ProtocolTCP:
		return "TCP"
	case ProtocolUDP:
		return "UDP"
	}
	return string(pr)
}
