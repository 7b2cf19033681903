package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pinpt/lineblame/lineblame/bufcache"
	"github.com/pinpt/lineblame/lineblame/gittime"
	"github.com/pinpt/lineblame/lineblame/incblame"
	"github.com/pinpt/lineblame/lineblame/session"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const cliBuf bufcache.BufferID = 1

var fileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Print every line of the file with the commit that last changed it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		opts := sessionOpts(cmd.Flags())
		s := session.New(opts)
		if err := load(cmd.Context(), s, path); err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrap(err, "could not read file")
		}
		defer f.Close()

		table, _ := s.Cache().Get(cliBuf)
		authorWidth := 0
		for _, rec := range table {
			if rec != nil && len(rec.Author) > authorWidth {
				authorWidth = len(rec.Author)
			}
		}
		numWidth := len(fmt.Sprint(table.Len()))

		scanner := bufio.NewScanner(f)
		for i := 0; scanner.Scan(); i++ {
			rec, ok := table.At(i)
			fmt.Fprintf(color.Output, "%v %*d| %v\n", attribution(rec, ok, opts, authorWidth), numWidth, i+1, scanner.Text())
		}
		return scanner.Err()
	},
}

func attribution(rec *incblame.Record, ok bool, opts session.Opts, authorWidth int) string {
	if !ok {
		return strings.Repeat(" ", 8+1+16+1+authorWidth)
	}
	return fmt.Sprintf("%v %v %v",
		color.CyanString(rec.ShortCommit()),
		color.MagentaString(gittime.FormatMinute(rec.AuthorTime, opts.Location)),
		color.GreenString("%-*s", authorWidth, rec.Author))
}

func load(ctx context.Context, s *session.Session, path string) error {
	res := s.BufRead(ctx, cliBuf, path)
	switch res {
	case session.Loaded, session.Unchanged:
		return nil
	case session.FetchFailed:
		return errors.Errorf("could not get blame for %v, is it committed to a git repo? run with --debug for details", path)
	default:
		return errors.Errorf("could not parse blame output for %v, run with --debug for details", path)
	}
}
