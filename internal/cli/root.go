package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"cpusched/config"
	"cpusched/internal/logging"
)

var (
	flagConfig    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	cfg    *config.SchedulerConfig
	logger *slog.Logger
)

// NewRootCmd creates the root cobra command for the cpusched CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cpusched",
		Short: "cpusched simulates and compares CPU scheduling policies",
		Long:  "cpusched runs FCFS, SJF, priority and round robin scheduling over a workload file and reports timelines and waiting times.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(flagConfig)
			if err != nil {
				return err
			}
			cfg = loaded

			level, format := cfg.LogLevel, cfg.LogFormat
			if flagLogLevel != "" {
				level = flagLogLevel
			}
			if flagDebug {
				level = "debug"
			}
			if flagLogFormat != "" {
				format = flagLogFormat
			}
			logger = logging.NewLoggerWithWriter(logging.ParseLevel(level), format, cmd.ErrOrStderr())
			slog.SetDefault(logger)
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file or directory holding config.yaml")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format (text, json)")

	root.AddCommand(
		newRunCmd(),
		newCompareCmd(),
		newServeCmd(),
	)
	return root
}
