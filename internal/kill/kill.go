// Package kill terminates the processes behind discovered ports.
// Unprivileged signals are tried first; pkexec provides the escalated
// retry, which may prompt the user graphically.
package kill

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidTarget rejects pid 0 before any signal or command is
// issued: a zero PID always means "owner unknown" in a port record.
var ErrInvalidTarget = errors.New("cannot kill process with unknown PID (0)")

// PermissionError reports that both the unprivileged kill and the
// pkexec retry failed. Stderr carries the escalation tool's diagnostic.
type PermissionError struct {
	PID    int
	Stderr string
}

func (e *PermissionError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("could not kill process %d: permission denied", e.PID)
	}
	return fmt.Sprintf("could not kill process %d: %s", e.PID, e.Stderr)
}

// KillAll terminates each unique pid in turn and reports how many
// succeeded alongside the joined failures. The batch is not atomic:
// partial success is a valid outcome, not a failure of the batch.
// Kills are serialized; parallel pkexec prompts would stack dialogs.
func KillAll(pids []int) (int, error) {
	killed := 0
	var errs []error
	for _, pid := range uniquePIDs(pids) {
		if err := Kill(pid); err != nil {
			errs = append(errs, err)
			continue
		}
		killed++
	}
	return killed, errors.Join(errs...)
}

// uniquePIDs sorts and deduplicates a kill batch so each process is
// signalled at most once.
func uniquePIDs(pids []int) []int {
	sorted := append([]int(nil), pids...)
	sort.Ints(sorted)

	out := sorted[:0]
	for i, pid := range sorted {
		if i == 0 || pid != sorted[i-1] {
			out = append(out, pid)
		}
	}
	return out
}
