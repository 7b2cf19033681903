package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/pinpt/lineblame/lineblame/cmd/cmdutils"
	"github.com/pinpt/lineblame/lineblame/pkg/logger"
	"github.com/pinpt/lineblame/lineblame/session"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var stopProfile func()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lineblame",
	Short: "Show who last changed each line of a file",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		p, _ := cmd.Flags().GetString("profile")
		if p == "" {
			return nil
		}
		onEnd, err := cmdutils.EnableProfiling(p)
		if err != nil {
			return err
		}
		stopProfile = onEnd
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		stopProfiling()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// stopProfiling writes the profile if one was started. Safe to call more than once.
func stopProfiling() {
	if stopProfile != nil {
		stopProfile()
		stopProfile = nil
	}
}

// sessionOpts builds session configuration from persistent flags.
func sessionOpts(flags *pflag.FlagSet) session.Opts {
	git, _ := flags.GetString("git")
	utc, _ := flags.GetBool("utc")
	debug, _ := flags.GetBool("debug")
	opts := session.Opts{
		GitCommand: git,
		Logger:     logger.NewDefaultLogger(os.Stderr, logger.Opts{Debug: debug, Color: !color.NoColor}),
	}
	if utc {
		opts.Location = time.UTC
	}
	return opts
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	flags := rootCmd.PersistentFlags()
	flags.String("git", "git", "git binary to run")
	flags.Bool("utc", false, "show commit times in UTC instead of local time")
	flags.Bool("debug", false, "print debug logs to stderr")
	flags.String("profile", "", fmt.Sprintf("one of %v or empty to disable", cmdutils.ProfileKinds))

	rootCmd.AddCommand(fileCmd, lineCmd, serveCmd, viewCmd)

	if err := rootCmd.Execute(); err != nil {
		stopProfiling()
		cmdutils.ExitWithErr(err)
	}
}
