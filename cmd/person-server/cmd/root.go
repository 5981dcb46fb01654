package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/person-profile/internal/config"
	"github.com/oshokin/person-profile/internal/logger"
	"github.com/oshokin/person-profile/internal/service/server"
	"github.com/oshokin/person-profile/internal/ui"
	"github.com/oshokin/person-profile/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// logLevel overrides the log level from configuration.
	logLevel string

	// rootCmd represents the base command for running the gRPC server.
	rootCmd = &cobra.Command{
		Use:   "person-server [listen-address]",
		Short: "Run the person gRPC server.",
		Long: `Starts the gRPC server that renders person descriptions for remote callers.

The server listens on the port of server_addr from the configuration file
(default ` + config.DefaultServerAddress + `), or on the address given as argument
(e.g., :9090, 0.0.0.0:8080).`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			level := logLevel
			if level == "" {
				cfg, err := config.Load(configPath)
				if err != nil {
					return err
				}

				level = cfg.LogLevel
			}

			return logger.SetLevelFromString(level)
		},
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			return server.Run(ctx, &server.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
			})
		},
	}
)

// Execute runs the person-server CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		ui.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}
