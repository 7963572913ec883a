package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mikey/avana-extractor/internal/config"
	"github.com/mikey/avana-extractor/internal/logging"
)

var (
	configFile string
	verbose    bool
	jsonLog    bool

	cfg *config.Config
)

// Execute runs the root command
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "avana",
		Short:        "Extract role email addresses from pasted text",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if configFile != "" {
				cfg, err = config.NewFromFile(configFile)
			} else {
				cfg, err = config.New()
			}
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "path to config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVar(&jsonLog, "json-log", false, "output logs in JSON format")

	root.AddCommand(extractCmd(), serveCmd(), keywordsCmd())
	return root
}

// consoleLogger builds the stderr logger used by interactive commands
func consoleLogger() (*zap.Logger, error) {
	logger, err := logging.InitConsoleLogger(verbose, jsonLog)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
