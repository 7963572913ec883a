package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mikey/avana-extractor/internal/core"
	"github.com/mikey/avana-extractor/internal/di"
	"github.com/mikey/avana-extractor/internal/ports"
)

// serve: run the SMTP intake until SIGINT or SIGTERM.
func serveCmd() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Accept forwarded mail threads over SMTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("listen") {
				cfg.Set("server.listen_address", listen)
			}
			if verbose {
				cfg.Set("logging.level", "debug")
			}

			container, err := di.BuildContainer(cfg)
			if err != nil {
				return fmt.Errorf("failed to build dependency container: %w", err)
			}
			return container.Invoke(run)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "listen address (overrides server.listen_address)")
	return cmd
}

// run is the daemon body; all dependencies are injected
func run(logger *zap.Logger, textIntake ports.TextIntake, repo core.KeywordRepository) error {
	defer logger.Sync()

	// Start the intake
	if err := textIntake.Start(); err != nil {
		logger.Error("Failed to start intake", zap.Error(err))
		return err
	}

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	<-sigCh
	logger.Info("Shutting down...")

	if err := textIntake.Stop(); err != nil {
		logger.Error("Failed to stop intake", zap.Error(err))
	}

	// Close the keyword store if needed
	stopRepository(repo)

	logger.Info("Shutdown complete")
	return nil
}
