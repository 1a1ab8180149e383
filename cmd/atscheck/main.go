package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"atscheck/internal/cli"
	"atscheck/internal/config"
	"atscheck/internal/errors"
)

func main() {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The config file flag must be known before cobra parses anything,
	// since configuration is loaded first.
	applyConfigFileFlag(os.Args[1:])

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logging
	logger, err := errors.New(cfg.App.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// Log startup
	logger.Info("Starting atscheck application",
		"version", cli.Version,
		"log_level", cfg.App.LogLevel,
		"ai_enabled", cfg.AI.Enabled)

	// Execute command with cancellable context
	if err := cli.Execute(ctx, cfg, logger); err != nil {
		logger.LogError(err, "Application execution failed")
		os.Exit(1)
	}
}

// applyConfigFileFlag pre-scans the arguments for --config so the explicit
// config file is honored during LoadConfig.
func applyConfigFileFlag(args []string) {
	for i, arg := range args {
		if arg == "--config" && i+1 < len(args) {
			config.SetConfigFile(args[i+1])
			return
		}
		if path, ok := strings.CutPrefix(arg, "--config="); ok {
			config.SetConfigFile(path)
			return
		}
	}
}
