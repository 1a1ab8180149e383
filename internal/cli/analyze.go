package cli

import (
	"context"
	"fmt"

	"atscheck/internal/ai"
	"atscheck/internal/analyzer"
	"atscheck/internal/common"
	"atscheck/internal/types"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job description into a structured record",
	Long: `Analyze a job description and print the structured view the scorer
works from: required and preferred skills split into hard and soft sets,
experience and education requirements, frequency-ranked keywords, key
phrases and section-scoped requirement lists.

--job accepts either a file path or the job description as literal text
(an existing file wins).`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if analyzeConfig.OutputFormat == "" {
			analyzeConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(analyzeConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runAnalyze,
}

var analyzeConfig common.CommandConfig

var analyzeJobInput string

func init() {
	analyzeCmd.Flags().StringVar(&analyzeJobInput, "job", "", "Job description file path or literal text")
	analyzeCmd.Flags().StringVarP(&analyzeConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	_ = analyzeCmd.MarkFlagRequired("job")

	// Add completion for format flag
	_ = analyzeCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	jobAnalyzer := analyzer.NewJobAnalyzer(cfg.Scoring.TopKeywords)

	buildInput := func(fp *common.FileProcessor) (string, error) {
		return fp.ResolveJobInput(analyzeJobInput)
	}

	logDetails := func(jobText string, cfg common.CommandConfig) {
		logger.Info("Starting job description analysis",
			"job_chars", len(jobText),
			"output_format", cfg.OutputFormat)
	}

	analyzeOperation := func(ctx context.Context, jobText string) (types.JobRecord, *ai.TokenUsage, error) {
		return jobAnalyzer.Analyze(jobText), nil, nil
	}

	err := common.RunCommand(
		cmd.Context(),
		logger,
		analyzeConfig,
		buildInput,
		analyzeOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to analyze job description: %w", err)
	}
	logger.Info("Job description analysis completed successfully")
	return nil
}
