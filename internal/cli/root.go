// Package cli implements the pairtime command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mmynk/pairtime/internal/clock"
	"github.com/mmynk/pairtime/pkg/logging"
)

var version = "dev"

// options are the global flags and dependencies shared by all commands.
type options struct {
	jsonOutput bool
	logLevel   string
	clock      clock.Clock
}

// SetVersion sets the version printed by --version.
func SetVersion(v string) {
	if v == "" {
		return
	}
	version = v
}

// Execute runs the root command against os.Args.
func Execute() error {
	return newRootCmd(clock.System{}).Execute()
}

// newRootCmd builds the command tree. NULL end dates resolve against clk.
func newRootCmd(clk clock.Clock) *cobra.Command {
	opts := &options{clock: clk}

	rootCmd := &cobra.Command{
		Use:     "pairtime",
		Version: version,
		Short:   "Find the employees who worked together the longest",
		Long: `pairtime reads employee project assignments and finds the pair of employees
who spent the most days working on common projects at the same time.

Each input line holds four comma-separated fields:

  EmpID,ProjectID,DateFrom,DateTo

DateTo may be NULL for an assignment that is still running.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupWith(cmd.ErrOrStderr(), logging.ParseLevel(opts.logLevel), "tint")
		},
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newLongestCmd(opts))
	rootCmd.AddCommand(newRankCmd(opts))

	return rootCmd
}
