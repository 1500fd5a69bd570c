package cli

import (
	"github.com/spf13/cobra"

	"github.com/mmynk/pairtime/internal/calculator"
	"github.com/mmynk/pairtime/internal/service"
)

func newRankCmd(opts *options) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "rank FILE",
		Short: "Rank every pair of employees by days worked together",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := readAssignments(cmd, opts, args[0])
			if err != nil {
				return err
			}

			resp := service.RankPairsResponse(len(records), calculator.RankPairs(records), limit)

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			return writeRanking(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most N pairs (0 shows all)")
	return cmd
}
