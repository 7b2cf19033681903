package cmd

import (
	"github.com/pinpt/lineblame/lineblame/pkg/logger"
	"github.com/pinpt/lineblame/lineblame/tui"
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view <path>",
	Short: "Open the file in a terminal viewer showing blame for the line under cursor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sopts := sessionOpts(cmd.Flags())
		// stderr output would break the alt screen
		sopts.Logger = logger.NewNopLogger()
		return tui.Run(cmd.Context(), tui.Opts{Path: args[0], Session: sopts})
	},
}
