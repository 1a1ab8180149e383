package common

import (
	"fmt"

	"atscheck/internal/errors"
	"atscheck/internal/formatters"
)

// CommandConfig carries the output destination and format shared by the
// CLI commands.
type CommandConfig struct {
	OutputFile   string
	OutputFormat string
}

// OutputHandler formats operation results and writes them to a file or
// stdout.
type OutputHandler struct {
	files    *FileProcessor
	registry *formatters.FormatterRegistry
	logger   *errors.Logger
}

// NewOutputHandler creates an output handler backed by the global
// formatter registry.
func NewOutputHandler(logger *errors.Logger) *OutputHandler {
	return &OutputHandler{
		files:    NewFileProcessor(logger),
		registry: formatters.GlobalRegistry,
		logger:   logger,
	}
}

// HandleOutput formats data and writes it to the configured destination.
// An empty OutputFile writes to stdout.
func (oh *OutputHandler) HandleOutput(data any, cfg CommandConfig) error {
	if err := oh.files.ValidateOutputFile(cfg.OutputFile); err != nil {
		return err
	}

	output, err := oh.registry.Format(data, cfg.OutputFormat)
	if err != nil {
		return errors.NewValidationError(errors.ErrCodeInvalidFormat,
			fmt.Sprintf("Failed to format output as %s", cfg.OutputFormat), err)
	}

	if cfg.OutputFile == "" {
		fmt.Print(output)
		return nil
	}

	if err := oh.files.WriteFile(cfg.OutputFile, output); err != nil {
		return err
	}
	oh.logger.Info("Output written",
		"file", cfg.OutputFile, "format", cfg.OutputFormat)
	return nil
}

// GetSupportedFormats returns all registered output formats.
func (oh *OutputHandler) GetSupportedFormats() []string {
	return oh.registry.GetSupportedFormats()
}
