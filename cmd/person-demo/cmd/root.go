package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/person-profile/internal/config"
	"github.com/oshokin/person-profile/internal/logger"
	"github.com/oshokin/person-profile/internal/service/demo"
	"github.com/oshokin/person-profile/internal/ui"
	"github.com/oshokin/person-profile/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// logLevel overrides the log level from configuration.
	logLevel string
	// rosterFile overrides the roster file from configuration.
	rosterFile string
	// plain disables styled headings.
	plain bool

	// rootCmd represents the base command running the demonstration.
	rootCmd = &cobra.Command{
		Use:   "person-demo",
		Short: "Describe sample people in every unit and letter case.",
		Long: `Builds the sample people (or those listed in a roster file) and prints
their descriptions: the default form, kilograms only, and every combination of
kilograms/pounds with upper/lower case.

The current year used for omitted birth years comes from the configuration file
(current_year) or the system clock.`,
		Args:              cobra.NoArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: applyLogLevel,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return demo.Run(ctx, cmd.OutOrStdout(), &demo.Options{
				ConfigPath: configPath,
				RosterFile: rosterFile,
				Plain:      plain,
			})
		},
	}
)

// Execute runs the person-demo CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)
	rootCmd.AddCommand(newDescribeCmd())

	if err := rootCmd.Execute(); err != nil {
		ui.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

// applyLogLevel sets the log level from the flag, falling back to configuration.
func applyLogLevel(_ *cobra.Command, _ []string) error {
	level := logLevel
	if level == "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		level = cfg.LogLevel
	}

	return logger.SetLevelFromString(level)
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.Flags().StringVarP(&rosterFile, "roster", "r", "", "YAML file listing people to describe")
	rootCmd.Flags().BoolVar(&plain, "plain", false, "print description lines only")
}
