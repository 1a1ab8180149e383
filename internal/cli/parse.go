package cli

import (
	"context"
	"fmt"

	"atscheck/internal/ai"
	"atscheck/internal/common"
	"atscheck/internal/parser"
	"atscheck/internal/types"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a resume into a structured record",
	Long: `Parse a resume file and print the structured view the scorer works
from: contact details, categorized hard and soft skills, and the deduplicated
keyword list.`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if parseConfig.OutputFormat == "" {
			parseConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(parseConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runParse,
}

var parseConfig common.CommandConfig

var (
	parseResumeFile   string
	parseResumeFormat string
)

func init() {
	parseCmd.Flags().StringVar(&parseResumeFile, "resume", "", "Resume file path")
	parseCmd.Flags().StringVar(&parseResumeFormat, "resume-format", "", "Assert the original resume format (e.g. .pdf) when passing pre-extracted text")
	parseCmd.Flags().StringVarP(&parseConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	parseCmd.Flags().StringVar(&parseConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	_ = parseCmd.MarkFlagRequired("resume")

	// Add completion for format flag
	_ = parseCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runParse(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	resumeParser := parser.NewResumeParser()

	buildInput := func(fp *common.FileProcessor) (types.ResumeRecord, error) {
		resumeText, err := fp.ReadResumeFile(parseResumeFile)
		if err != nil {
			return types.ResumeRecord{}, err
		}
		format := parseResumeFormat
		if format == "" {
			format = fp.ResumeFileFormat(parseResumeFile)
		}
		return resumeParser.Parse(resumeText, parseResumeFile, format), nil
	}

	logDetails := func(record types.ResumeRecord, cfg common.CommandConfig) {
		logger.Info("Starting resume parsing",
			"resume_chars", len(record.RawText),
			"output_format", cfg.OutputFormat)
	}

	parseOperation := func(ctx context.Context, record types.ResumeRecord) (types.ResumeRecord, *ai.TokenUsage, error) {
		return record, nil, nil
	}

	err := common.RunCommand(
		cmd.Context(),
		logger,
		parseConfig,
		buildInput,
		parseOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}
	logger.Info("Resume parsing completed successfully")
	return nil
}
