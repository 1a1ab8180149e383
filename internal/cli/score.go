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

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job description",
	Long: `Score a resume against a job description and report ATS compatibility.
The resume is read from --resume; --job accepts either a file path or the
job description as literal text (an existing file wins). The report includes
component scores, detailed feedback and prioritized recommendations.`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if scoreConfig.OutputFormat == "" {
			scoreConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(scoreConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runScore,
}

var scoreConfig common.CommandConfig

var (
	scoreResumeFile   string
	scoreJobInput     string
	scoreResumeFormat string
	scoreVerbose      bool
)

func init() {
	scoreCmd.Flags().StringVar(&scoreResumeFile, "resume", "", "Resume file path")
	scoreCmd.Flags().StringVar(&scoreJobInput, "job", "", "Job description file path or literal text")
	scoreCmd.Flags().StringVar(&scoreResumeFormat, "resume-format", "", "Assert the original resume format (e.g. .pdf) when passing pre-extracted text")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Log parsed input details")
	scoreCmd.Flags().StringVarP(&scoreConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	_ = scoreCmd.MarkFlagRequired("resume")
	_ = scoreCmd.MarkFlagRequired("job")

	// Add completion for format flag
	_ = scoreCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

// scoreInput carries the structured records the scorer consumes.
type scoreInput struct {
	resume types.ResumeRecord
	job    types.JobRecord
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	resumeParser := parser.NewResumeParser()
	jobAnalyzer := analyzer.NewJobAnalyzer(cfg.Scoring.TopKeywords)
	scorer := scoring.NewScorer()

	buildInput := func(fp *common.FileProcessor) (scoreInput, error) {
		resumeText, err := fp.ReadResumeFile(scoreResumeFile)
		if err != nil {
			return scoreInput{}, err
		}
		jobText, err := fp.ResolveJobInput(scoreJobInput)
		if err != nil {
			return scoreInput{}, err
		}
		format := scoreResumeFormat
		if format == "" {
			format = fp.ResumeFileFormat(scoreResumeFile)
		}
		return scoreInput{
			resume: resumeParser.Parse(resumeText, scoreResumeFile, format),
			job:    jobAnalyzer.Analyze(jobText),
		}, nil
	}

	logDetails := func(input scoreInput, cfg common.CommandConfig) {
		logger.Info("Starting resume scoring",
			"resume_chars", len(input.resume.RawText),
			"job_title", input.job.JobTitle,
			"output_format", cfg.OutputFormat)
		if scoreVerbose {
			logger.Info("Parsed input details",
				"resume_keywords", len(input.resume.Keywords),
				"resume_hard_skills", len(input.resume.HardSkills),
				"resume_soft_skills", len(input.resume.SoftSkills),
				"job_required_skills", len(input.job.RequiredSkills),
				"job_keywords", len(input.job.Keywords.SingleWords))
		}
	}

	scoreOperation := func(ctx context.Context, input scoreInput) (types.ScoreResult, *ai.TokenUsage, error) {
		return scorer.Score(input.resume, input.job), nil, nil
	}

	err := common.RunCommand(
		cmd.Context(),
		logger,
		scoreConfig,
		buildInput,
		scoreOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to score resume: %w", err)
	}
	logger.Info("Resume scoring completed successfully")
	return nil
}
