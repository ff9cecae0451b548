package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"patterns/internal/config"
	"patterns/internal/logging"
)

// NewRootCmd builds the patterns command tree.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	var logLevel, logFormat string

	rootCmd := &cobra.Command{
		Use:           "patterns",
		Short:         "Run the design pattern examples",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(logging.New(logLevel, logFormat, cmd.ErrOrStderr()))
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", cfg.LogFormat, "Log format (json, text)")

	rootCmd.AddCommand(
		newCompositeCmd(),
		newObserverCmd(),
		newSingletonCmd(cfg),
		newAdapterCmd(),
		newDecoratorCmd(),
	)

	return rootCmd
}
