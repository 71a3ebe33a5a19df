package cli

import (
	"github.com/spf13/cobra"

	"cpusched/internal/render"
	"cpusched/internal/schedulers"
)

func newRunCmd() *cobra.Command {
	var (
		opts      workloadOptions
		algorithm string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate one scheduling algorithm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := schedulers.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}
			request, quantum, err := opts.load()
			if err != nil {
				return err
			}

			result, err := schedulers.Run(alg, request.Workload(), quantum)
			if err != nil {
				return err
			}
			logger.Debug("run finished", "algorithm", alg, "processes", len(result.Processes), "avg_waiting", result.AverageWaitingTime)

			if opts.output == "json" {
				return writeJSON(cmd.OutOrStdout(), schedulers.GenerateResponse(result))
			}
			render.Report(cmd.OutOrStdout(), result)
			return nil
		},
	}
	opts.addFlags(cmd.Flags())
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "fcfs", "Algorithm (fcfs, sjf, priority, rr)")
	return cmd
}
