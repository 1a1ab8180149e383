package common

import (
	"context"
	"fmt"
	"os"

	"atscheck/internal/ai"
	"atscheck/internal/errors"
)

// BuildInputFunc defines how to assemble the operation input from the
// command's input files and flags.
type BuildInputFunc[Input any] func(fp *FileProcessor) (Input, error)

// LogDetailsFunc defines how to log the start of an operation.
type LogDetailsFunc[Input any] func(input Input, cfg CommandConfig)

// OperationFunc is a generic function signature for any pipeline operation
// with context and token usage. Local operations return nil usage.
type OperationFunc[Input, Output any] func(context.Context, Input) (Output, *ai.TokenUsage, error)

// RunCommand encapsulates the common logic for CLI commands with token usage reporting.
func RunCommand[Input, Output any](
	ctx context.Context,
	logger *errors.Logger,
	cmdConfig CommandConfig,
	buildInput BuildInputFunc[Input],
	operation OperationFunc[Input, Output],
	logDetails LogDetailsFunc[Input],
) error {
	// Pass the logger when creating helpers
	fileProcessor := NewFileProcessor(logger)
	outputHandler := NewOutputHandler(logger)

	input, err := buildInput(fileProcessor)
	if err != nil {
		return err
	}

	logDetails(input, cmdConfig)

	result, tokenUsage, err := operation(ctx, input)
	if err != nil {
		return err
	}

	// Report token usage
	if tokenUsage != nil {
		if logger != nil {
			logger.Info("AI token usage", "input_tokens", tokenUsage.InputTokens, "output_tokens", tokenUsage.OutputTokens, "total_tokens", tokenUsage.TotalTokens)
		} else {
			fmt.Fprintf(os.Stderr, "AI token usage: input=%d, output=%d, total=%d\n", tokenUsage.InputTokens, tokenUsage.OutputTokens, tokenUsage.TotalTokens)
		}
	}

	return outputHandler.HandleOutput(result, cmdConfig)
}
