//go:build !linux

package kill

import (
	"fmt"

	"github.com/portslayer/portslayer/pkg/model"
)

func Kill(pid int) error {
	if pid <= 0 {
		return ErrInvalidTarget
	}
	return fmt.Errorf("process termination is only supported on Linux")
}

func KillByPort(port int, proto model.Protocol) error {
	return fmt.Errorf("kill by port is only supported on Linux")
}
