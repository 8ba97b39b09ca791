//go:build linux

package scan

import (
	"os/exec"
	"time"

	"golang.org/x/time/rate"

	"github.com/portslayer/portslayer/pkg/model"
)

// ssSources pairs the ss invocation flags with the protocol they list:
// listening TCP sockets and all UDP sockets, numeric, no header.
var ssSources = []struct {
	flag  string
	proto model.Protocol
}{
	{"-tlnpH", model.ProtocolTCP},
	{"-ulnpH", model.ProtocolUDP},
}

// The fallback warning would otherwise repeat on every scan of the
// ten-second background loop.
var degradedWarn = rate.Sometimes{First: 1, Interval: time.Minute}

func collectCommandSource() []model.PortRecord {
	var records []model.PortRecord
	for _, src := range ssSources {
		out, ok := readSS(src.flag)
		if !ok {
			continue
		}
		records = append(records, ParseSS(out, src.proto)...)
	}
	return records
}

// readSS runs ss, first under non-interactive sudo so that sockets of
// other users come back with process identities. Any sudo failure
// (missing binary, password required, nonzero exit) falls back to an
// unprivileged run; only both attempts failing makes the source empty.
func readSS(flag string) (string, bool) {
	out, err := exec.Command("sudo", "-n", "ss", flag).Output()
	if err == nil {
		return string(out), true
	}

	degradedWarn.Do(func() {
		warnLog.Printf("running ss without sudo - some process identities will not be visible")
	})

	out, err = exec.Command("ss", flag).Output()
	if err != nil {
		return "", false
	}
	return string(out), true
}
