package cli

import (
	"github.com/spf13/cobra"

	"cpusched/internal/render"
	"cpusched/internal/schedulers"
)

func newCompareCmd() *cobra.Command {
	var opts workloadOptions
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every algorithm and report the lowest average waiting time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			request, quantum, err := opts.load()
			if err != nil {
				return err
			}

			comparison, err := schedulers.Compare(request.Workload(), quantum)
			if err != nil {
				return err
			}
			logger.Debug("compare finished", "best", comparison.Best().Algorithm)

			if opts.output == "json" {
				return writeJSON(cmd.OutOrStdout(), schedulers.GenerateCompareResponse(comparison))
			}
			for _, result := range comparison.Results {
				render.Report(cmd.OutOrStdout(), result)
			}
			render.ComparisonTable(cmd.OutOrStdout(), comparison)
			return nil
		},
	}
	opts.addFlags(cmd.Flags())
	return cmd
}
