//go:build linux

package kill

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/portslayer/portslayer/pkg/model"
)

// Kill sends SIGKILL to pid, escalating through pkexec when the direct
// signal is not permitted. pkexec may prompt interactively; on headless
// systems the prompt fails and its stderr comes back in the error.
func Kill(pid int) error {
	if pid <= 0 {
		return ErrInvalidTarget
	}

	if err := unix.Kill(pid, unix.SIGKILL); err == nil {
		return nil
	} else if errors.Is(err, unix.ESRCH) {
		return fmt.Errorf("process %d not found", pid)
	}

	var stderr bytes.Buffer
	cmd := exec.Command("pkexec", "kill", "-9", strconv.Itoa(pid))
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return &PermissionError{PID: pid, Stderr: strings.TrimSpace(stderr.String())}
	}
	return nil
}

// KillByPort frees a port whose owner could not be resolved, using
// fuser's port/protocol addressing instead of a PID. Same escalation
// ladder as Kill.
func KillByPort(port int, proto model.Protocol) error {
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid port %d", port)
	}
	target := fmt.Sprintf("%d/%s", port, proto)

	if err := exec.Command("fuser", "-k", target).Run(); err == nil {
		return nil
	}

	var stderr bytes.Buffer
	cmd := exec.Command("pkexec", "fuser", "-k", target)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("could not free port %s: %s", target, strings.TrimSpace(stderr.String()))
	}
	return nil
}
