package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/pinpt/lineblame/lineblame/session"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var lineCmd = &cobra.Command{
	Use:   "line <path> <line>",
	Short: "Print the commit that last changed one line, line numbers start at 1",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.Errorf("line must be a number, got %v", args[1])
		}
		s := session.New(sessionOpts(cmd.Flags()))
		if err := load(cmd.Context(), s, path); err != nil {
			return err
		}
		text, ok := s.Text(cliBuf, n-1)
		if !ok {
			fmt.Fprintln(color.Output, color.YellowString("no blame for line %v", n))
			return nil
		}
		fmt.Fprintln(color.Output, text)
		return nil
	},
}
