package cli

import (
	"context"

	"atscheck/internal/config"
	"atscheck/internal/errors"

	"github.com/spf13/cobra"
)

// Define custom private types for context keys.
type configKeyType struct{}
type loggerKeyType struct{}

// Use variables of these types as the keys.
var configKey = configKeyType{}
var loggerKey = loggerKeyType{}

var rootCmd = &cobra.Command{
	Use:   "atscheck",
	Short: "A CLI tool for scoring resumes against job descriptions",
	Long: `Atscheck scores a resume against a job description the way an
applicant tracking system would: keyword coverage, hard and soft skill
matching, title alignment, experience, education and formatting signals.
It can also analyze job postings, parse resumes into structured records,
and run LLM-enhanced keyword matching.`,
}

func Execute(ctx context.Context, cfg *config.Config, logger *errors.Logger) error {
	// Attach the config and logger to the context, making them available to all subcommands
	ctx = context.WithValue(ctx, configKey, cfg)
	ctx = context.WithValue(ctx, loggerKey, logger)
	rootCmd.SetContext(ctx)
	return rootCmd.Execute()
}

// getConfigFromContext is a helper function to get config from context
func getConfigFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok {
		return cfg
	}
	panic("config not found in context") // Should not happen if properly initialized
}

// getLoggerFromContext is a helper function to get logger from context
func getLoggerFromContext(ctx context.Context) *errors.Logger {
	if logger, ok := ctx.Value(loggerKey).(*errors.Logger); ok {
		return logger
	}
	panic("logger not found in context") // Should not happen if properly initialized
}

func init() {
	// The config file flag is consumed in main before cobra parses; it is
	// registered here so it appears in help output.
	rootCmd.PersistentFlags().String("config", "", "Config file path (default: search /etc/atscheck, $HOME/.atscheck, .)")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
}
