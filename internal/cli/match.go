package cli

import (
	"context"
	"fmt"

	"atscheck/internal/ai"
	"atscheck/internal/analyzer"
	"atscheck/internal/common"
	"atscheck/internal/parser"
	"atscheck/internal/scoring"
	"atscheck/internal/types"

	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match resume keywords against job keywords",
	Long: `Match the keywords extracted from a resume against the keywords of a
job description. When AI is enabled the matching is LLM-enhanced and reports
semantic and related matches; otherwise, and whenever the AI call fails, a
deterministic lexical matcher is used. The command works fully without an
API key.

--qualifications additionally extracts an LLM qualification profile from the
resume (requires AI to be enabled).`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if matchConfig.OutputFormat == "" {
			matchConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(matchConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runMatch,
}

var matchConfig common.CommandConfig

var (
	matchResumeFile     string
	matchJobInput       string
	matchQualifications bool
)

func init() {
	matchCmd.Flags().StringVar(&matchResumeFile, "resume", "", "Resume file path")
	matchCmd.Flags().StringVar(&matchJobInput, "job", "", "Job description file path or literal text")
	matchCmd.Flags().BoolVar(&matchQualifications, "qualifications", false, "Also extract a qualification profile from the resume")
	matchCmd.Flags().StringVarP(&matchConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	matchCmd.Flags().StringVar(&matchConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	_ = matchCmd.MarkFlagRequired("resume")
	_ = matchCmd.MarkFlagRequired("job")

	// Add completion for format flag
	_ = matchCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

// matchInput carries the keyword lists plus the raw resume text for the
// optional qualification extraction.
type matchInput struct {
	resumeText     string
	resumeKeywords []string
	jobKeywords    []string
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	resumeParser := parser.NewResumeParser()
	jobAnalyzer := analyzer.NewJobAnalyzer(cfg.Scoring.TopKeywords)

	buildInput := func(fp *common.FileProcessor) (matchInput, error) {
		resumeText, err := fp.ReadResumeFile(matchResumeFile)
		if err != nil {
			return matchInput{}, err
		}
		jobText, err := fp.ResolveJobInput(matchJobInput)
		if err != nil {
			return matchInput{}, err
		}

		resume := resumeParser.Parse(resumeText, matchResumeFile, fp.ResumeFileFormat(matchResumeFile))
		job := jobAnalyzer.Analyze(jobText)

		jobKeywords := make([]string, 0, len(job.Keywords.SingleWords))
		for _, kw := range job.Keywords.SingleWords {
			jobKeywords = append(jobKeywords, kw.Keyword)
		}

		return matchInput{
			resumeText:     resumeText,
			resumeKeywords: resume.Keywords,
			jobKeywords:    jobKeywords,
		}, nil
	}

	logDetails := func(input matchInput, cfg common.CommandConfig) {
		logger.Info("Starting keyword matching",
			"resume_keywords", len(input.resumeKeywords),
			"job_keywords", len(input.jobKeywords),
			"ai_enabled", getConfigFromContext(cmd.Context()).AI.Enabled,
			"output_format", cfg.OutputFormat)
	}

	matchOperation := func(ctx context.Context, input matchInput) (types.MatchReport, *ai.TokenUsage, error) {
		if !cfg.AI.Enabled {
			if matchQualifications {
				logger.Warn("Qualification extraction requires AI to be enabled, skipping")
			}
			return types.MatchReport{
				Match: scoring.BasicMatchKeywords(input.resumeKeywords, input.jobKeywords),
			}, nil, nil
		}

		matchAIConfig := cfg.GetMatchConfig()
		matchService, err := ai.NewService(&matchAIConfig, "match", logger)
		if err != nil {
			return types.MatchReport{}, nil, fmt.Errorf("failed to create AI service: %w", err)
		}

		// The service degrades to the lexical matcher on provider failure.
		result, usage, err := matchService.MatchKeywords(ctx, input.resumeKeywords, input.jobKeywords)
		if err != nil {
			return types.MatchReport{}, nil, err
		}

		report := types.MatchReport{Match: result}

		if matchQualifications {
			qualsAIConfig := cfg.GetQualificationsConfig()
			qualsService, err := ai.NewService(&qualsAIConfig, "qualifications", logger)
			if err != nil {
				return types.MatchReport{}, nil, fmt.Errorf("failed to create AI service: %w", err)
			}
			profile, qualsUsage, err := qualsService.ExtractQualifications(ctx, input.resumeText)
			if err != nil {
				logger.Warn("Qualification extraction failed, continuing without profile",
					"error", err.Error())
			} else {
				report.Qualifications = profile
				usage = sumTokenUsage(usage, qualsUsage)
			}
		}

		return report, usage, nil
	}

	err := common.RunCommand(
		cmd.Context(),
		logger,
		matchConfig,
		buildInput,
		matchOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to match keywords: %w", err)
	}
	logger.Info("Keyword matching completed successfully")
	return nil
}

func sumTokenUsage(a, b *ai.TokenUsage) *ai.TokenUsage {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return &ai.TokenUsage{
		InputTokens:  a.InputTokens + b.InputTokens,
		OutputTokens: a.OutputTokens + b.OutputTokens,
		TotalTokens:  a.TotalTokens + b.TotalTokens,
	}
}
