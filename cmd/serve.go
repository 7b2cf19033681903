package cmd

import (
	"os"

	"github.com/pinpt/lineblame/lineblame/serve"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Read editor events as JSON lines from stdin and write blame text to stdout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := serve.Opts{Session: sessionOpts(cmd.Flags())}
		return serve.Serve(cmd.Context(), os.Stdin, os.Stdout, opts)
	},
}
