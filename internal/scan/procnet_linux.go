//go:build linux

package scan

import (
	"os"

	"github.com/portslayer/portslayer/pkg/model"
)

var procNetTables = []struct {
	path  string
	proto model.Protocol
}{
	{"/proc/net/tcp", model.ProtocolTCP},
	{"/proc/net/tcp6", model.ProtocolTCP},
	{"/proc/net/udp", model.ProtocolUDP},
	{"/proc/net/udp6", model.ProtocolUDP},
}

// collectKernelSource reads the four kernel socket tables. A missing
// table is skipped; systems without IPv6 simply have no tcp6/udp6.
// The inode map is rebuilt fresh for each pass.
func collectKernelSource() []model.PortRecord {
	owners := buildInodeOwners()

	var records []model.PortRecord
	for _, table := range procNetTables {
		content, err := os.ReadFile(table.path)
		if err != nil {
			continue
		}
		records = append(records, ParseProcNet(string(content), table.proto, owners)...)
	}
	return records
}
