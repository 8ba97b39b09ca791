package app

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/portslayer/portslayer/internal/kill"
	"github.com/portslayer/portslayer/internal/scan"
	"github.com/portslayer/portslayer/pkg/model"
)

var (
	killAllFlag  bool
	killPortFlag int
	killUDPFlag  bool
)

var killCmd = &cobra.Command{
	Use:   "kill [pid...]",
	Short: "Kill processes behind open ports",
	Long: `Kill sends SIGKILL to the given PIDs, retrying through pkexec when
the direct signal is denied. --all targets every port owner the scan
can attribute; --port frees a single port via fuser even when the
owner is unknown.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if killPortFlag > 0 {
			proto := model.ProtocolTCP
			if killUDPFlag {
				proto = model.ProtocolUDP
			}
			if err := kill.KillByPort(killPortFlag, proto); err != nil {
				return err
			}
			fmt.Printf("Freed port %d/%s\n", killPortFlag, proto)
			return nil
		}

		var pids []int
		switch {
		case killAllFlag:
			for _, rec := range scan.Scan() {
				if rec.Owner.Known() {
					pids = append(pids, rec.Owner.PID)
				}
			}
			if len(pids) == 0 {
				return errors.New("no port owners with a known PID to kill")
			}
		case len(args) > 0:
			for _, arg := range args {
				pid, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid pid %q", arg)
				}
				pids = append(pids, pid)
			}
		default:
			return errors.New("specify pids, --all or --port")
		}

		killed, err := kill.KillAll(pids)
		fmt.Printf("Killed %d process(es)\n", killed)
		return err
	},
}

func init() {
	killCmd.Flags().BoolVar(&killAllFlag, "all", false, "kill every port owner the scan can attribute")
	killCmd.Flags().IntVar(&killPortFlag, "port", 0, "free a single port via fuser instead of targeting a pid")
	killCmd.Flags().BoolVar(&killUDPFlag, "udp", false, "with --port: treat the port as UDP instead of TCP")
	rootCmd.AddCommand(killCmd)
}
