package app

import (
	"github.com/spf13/cobra"

	"github.com/portslayer/portslayer/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:          "tui",
	Short:        "Interactive port table with kill actions",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Start(versionString)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
