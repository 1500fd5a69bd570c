package cli

import (
	"github.com/spf13/cobra"

	"github.com/mmynk/pairtime/internal/calculator"
	"github.com/mmynk/pairtime/internal/service"
)

func newLongestCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "longest FILE",
		Short: "Show the pair of employees who worked together the longest",
		Long: `Show the pair of employees with the most days on common projects at the
same time, with the days spent on each shared project. Use - to read stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := readAssignments(cmd, opts, args[0])
			if err != nil {
				return err
			}

			result, found := calculator.FindLongestPair(records)
			resp := service.LongestPairResponse(len(records), result, found)

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			return writeLongestPair(cmd.OutOrStdout(), resp)
		},
	}
}
