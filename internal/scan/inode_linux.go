//go:build linux

package scan

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/portslayer/portslayer/pkg/model"
)

// buildInodeOwners walks every numeric /proc entry and records which
// process holds each socket inode open. Processes that vanish mid-walk
// or whose fd table is unreadable are skipped; a partial map is the
// normal outcome of racing with a live system.
func buildInodeOwners() InodeOwners {
	owners := make(InodeOwners)

	entries, err := os.ReadDir("/proc")
	if err != nil {
		return owners
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		pid, err := strconv.Atoi(entry.Name())
		if err != nil {
			continue
		}

		name := readComm(pid)

		fdDir := fmt.Sprintf("/proc/%d/fd", pid)
		fds, err := os.ReadDir(fdDir)
		if err != nil {
			continue
		}

		for _, fd := range fds {
			link, err := os.Readlink(fdDir + "/" + fd.Name())
			if err != nil {
				continue
			}
			if inode, ok := extractSocketInode(link); ok {
				owners[inode] = model.Owner{PID: pid, Name: name}
			}
		}
	}

	return owners
}

func readComm(pid int) string {
	comm, err := os.ReadFile(fmt.Sprintf("/proc/%d/comm", pid))
	if err != nil {
		return model.UnknownProcessName
	}
	return strings.TrimSpace(string(comm))
}
