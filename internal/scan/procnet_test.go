package scan

import (
	"testing"

	"github.com/portslayer/portslayer/pkg/model"
)

const sampleTCPTable = `  sl  local_address rem_address   st tx_queue rx_queue tr tm->when retrnsmt   uid  timeout inode
   0: 00000000:0BB8 00000000:0000 0A 00000000:00000000 00:00000000 00000000  1000        0 22881 1 0000000000000000 100 0 0 10 0
   1: 0100007F:1538 00000000:0000 0A 00000000:00000000 00:00000000 00000000   999        0 31337 1 0000000000000000 100 0 0 10 0
   2: 0100007F:0016 0100007F:A2C4 01 00000000:00000000 00:00000000 00000000     0        0 44444 1 0000000000000000 100 0 0 10 0
`

func TestParseHexAddress(t *testing.T) {
	tests := []struct {
		in       string
		wantAddr string
		wantPort int
		wantOK   bool
	}{
		{"00000000:0BB8", "0.0.0.0", 3000, true},
		{"0100007F:1538", "127.0.0.1", 5432, true},
		{"00000000000000000000000000000000:0050", "[::]", 80, true},
		{"00000000000000000000000001000000:0277", "[::1]", 631, true},
		// Non-well-known IPv6 is deliberately abbreviated, not expanded.
		{"FE800000000000000000000000000001:1F90", "[FE80...0001]", 8080, true},
		{"0BB8", "", 0, false},          // no colon
		{"XYZ00000:0050", "", 0, false}, // bad hex
		{"000000:0050", "", 0, false},   // wrong length
	}

	for _, tt := range tests {
		addr, port, ok := parseHexAddress(tt.in)
		if ok != tt.wantOK {
			t.Errorf("parseHexAddress(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if addr != tt.wantAddr || port != tt.wantPort {
			t.Errorf("parseHexAddress(%q) = (%q, %d), want (%q, %d)",
				tt.in, addr, port, tt.wantAddr, tt.wantPort)
		}
	}
}

func TestParseProcNetListeningOnly(t *testing.T) {
	records := ParseProcNet(sampleTCPTable, model.ProtocolTCP, nil)
	if len(records) != 2 {
		t.Fatalf("expected 2 LISTEN records, got %d", len(records))
	}
	if records[0].Port != 3000 || records[0].LocalAddr != "0.0.0.0" {
		t.Errorf("first record = %+v, want 0.0.0.0:3000", records[0])
	}
	if records[1].Port != 5432 || records[1].LocalAddr != "127.0.0.1" {
		t.Errorf("second record = %+v, want 127.0.0.1:5432", records[1])
	}
}

func TestParseProcNetInodeOwnership(t *testing.T) {
	owners := InodeOwners{
		22881: {PID: 4242, Name: "node"},
	}
	records := ParseProcNet(sampleTCPTable, model.ProtocolTCP, owners)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Owner.PID != 4242 || records[0].Owner.Name != "node" {
		t.Errorf("owner = %+v, want (4242, node)", records[0].Owner)
	}
	// Inode 31337 is absent from the map: unknown owner, not an error.
	if records[1].Owner.Known() {
		t.Errorf("owner = %+v, want unknown", records[1].Owner)
	}
}

func TestParseProcNetUDPState(t *testing.T) {
	table := `  sl  local_address rem_address   st tx_queue rx_queue tr tm->when retrnsmt   uid  timeout inode
   0: 00000000:0035 00000000:0000 07 00000000:00000000 00:00000000 00000000   101        0 17001 2
   1: 00000000:8235 00000000:0000 01 00000000:00000000 00:00000000 00000000   101        0 17002 2
`
	records := ParseProcNet(table, model.ProtocolUDP, nil)
	if len(records) != 1 {
		t.Fatalf("expected 1 open UDP record, got %d", len(records))
	}
	if records[0].Port != 53 {
		t.Errorf("port = %d, want 53", records[0].Port)
	}
}

func TestParseProcNetShortLinesDropped(t *testing.T) {
	table := "header\n0: 00000000:0BB8 00000000:0000 0A\n"
	if records := ParseProcNet(table, model.ProtocolTCP, nil); len(records) != 0 {
		t.Errorf("expected no records from short lines, got %d", len(records))
	}
}

func TestParseProcNetZeroPortDropped(t *testing.T) {
	table := `header
   0: 00000000:0000 00000000:0000 0A 00000000:00000000 00:00000000 00000000  1000        0 22881 1
`
	if records := ParseProcNet(table, model.ProtocolTCP, nil); len(records) != 0 {
		t.Errorf("expected zero-port socket to be discarded, got %d records", len(records))
	}
}

func TestExtractSocketInode(t *testing.T) {
	tests := []struct {
		link   string
		want   uint64
		wantOK bool
	}{
		{"socket:[22881]", 22881, true},
		{"pipe:[123]", 0, false},
		{"anon_inode:", 0, false},
		{"socket:[notanumber]", 0, false},
		{"/dev/null", 0, false},
	}
	for _, tt := range tests {
		got, ok := extractSocketInode(tt.link)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("extractSocketInode(%q) = (%d, %v), want (%d, %v)",
				tt.link, got, ok, tt.want, tt.wantOK)
		}
	}
}
