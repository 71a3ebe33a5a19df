package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"cpusched/api"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduler HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != 0 {
				cfg.Port = port
			}
			app := api.NewApp(api.NewSchedulerHandlerImpl(cfg, logger))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			addr := fmt.Sprintf(":%d", cfg.Port)
			errCh := make(chan error, 1)
			go func() {
				errCh <- app.Listen(addr)
			}()
			logger.Info("scheduler api listening", "addr", addr, "time_quantum", cfg.RoundRobinTimeQuantum)

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				logger.Info("shutting down")
				return app.ShutdownWithTimeout(shutdownTimeout)
			}
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Listen port (default: from config)")
	return cmd
}
