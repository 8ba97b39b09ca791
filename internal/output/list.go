package output

import (
	"fmt"
	"io"

	"github.com/portslayer/portslayer/pkg/model"
)

var (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[2m"
)

// RenderList prints the port list as an aligned table. Records with a
// resolved owner show the process name and PID; unattributed records
// show the unknown placeholder dimmed (yellow when color is on).
func RenderList(w io.Writer, records []model.PortRecord, colorEnabled bool) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No open ports found.")
		return
	}

	fmt.Fprintf(w, "%-5s %6s  %-25s %8s  %s\n", "PROTO", "PORT", "ADDRESS", "PID", "PROCESS")
	for _, rec := range records {
		pid := "-"
		if rec.Owner.Known() {
			pid = fmt.Sprintf("%d", rec.Owner.PID)
		}

		name := rec.Owner.Name
		if colorEnabled {
			if rec.Owner.Known() {
				name = colorGreen + name + colorReset
			} else {
				name = colorYellow + name + colorReset
			}
		}

		fmt.Fprintf(w, "%-5s %6d  %-25s %8s  %s\n",
			rec.Protocol.Upper(), rec.Port, rec.LocalAddr, pid, name)
	}
	fmt.Fprintf(w, "%s%d ports%s\n", boldOn(colorEnabled), len(records), boldOff(colorEnabled))
}

func boldOn(enabled bool) string {
	if enabled {
		return colorBold
	}
	return ""
}

func boldOff(enabled bool) string {
	if enabled {
		return colorReset
	}
	return ""
}
