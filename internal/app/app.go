// Package app wires the CLI surface: the root command prints one scan,
// kill terminates port owners, tui starts the interactive view.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/portslayer/portslayer/internal/output"
	"github.com/portslayer/portslayer/internal/scan"
)

var (
	versionString = "dev"

	jsonOut   bool
	protoFlag string
)

var rootCmd = &cobra.Command{
	Use:   "portslayer",
	Short: "Discover and kill the processes behind open TCP/UDP ports",
	Long: `portslayer lists every listening TCP/UDP socket on the host, resolves
the owning process where possible, and can terminate it.

Two sources are merged per scan: the ss command (process names, given
privileges) and the /proc/net socket tables (every socket, including
Docker's). Run without arguments for a one-shot listing.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := parseProtoFlag(protoFlag)
		if err != nil {
			return err
		}

		records := scan.Filter(scan.Scan(), filter)

		if jsonOut {
			s, err := output.ToJSON(records)
			if err != nil {
				return err
			}
			fmt.Println(s)
			return nil
		}

		output.RenderList(os.Stdout, records, stdoutIsTerminal())
		return nil
	},
}

func parseProtoFlag(flag string) (scan.ProtocolFilter, error) {
	switch flag {
	case "", "all":
		return scan.FilterAll, nil
	case "tcp":
		return scan.FilterTCP, nil
	case "udp":
		return scan.FilterUDP, nil
	}
	return scan.FilterAll, fmt.Errorf("invalid --proto %q (want tcp, udp or all)", flag)
}

func stdoutIsTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func init() {
	rootCmd.Flags().BoolVar(&jsonOut, "json", false, "print the port list as JSON")
	rootCmd.Flags().StringVar(&protoFlag, "proto", "all", "protocol filter: tcp, udp or all")
}

func SetVersionBuildCommitString(version, commit, buildDate string) {
	if version == "" {
		version = "dev"
	}
	versionString = version
	full := version
	if commit != "" {
		full += " (" + commit
		if buildDate != "" {
			full += ", " + buildDate
		}
		full += ")"
	}
	rootCmd.Version = full
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
