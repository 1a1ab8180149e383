package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"atscheck/internal/scoring"
	"atscheck/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "ScoreResult", &ScoreTextFormatter{})
	registry.RegisterFormatter("markdown", "ScoreResult", &ScoreMarkdownFormatter{})
	registry.RegisterFormatter("text", "JobRecord", &JobRecordTextFormatter{})
	registry.RegisterFormatter("markdown", "JobRecord", &JobRecordMarkdownFormatter{})
	registry.RegisterFormatter("text", "ResumeRecord", &ResumeRecordTextFormatter{})
	registry.RegisterFormatter("markdown", "ResumeRecord", &ResumeRecordMarkdownFormatter{})
	registry.RegisterFormatter("text", "KeywordMatchResult", &MatchTextFormatter{})
	registry.RegisterFormatter("markdown", "KeywordMatchResult", &MatchMarkdownFormatter{})
	registry.RegisterFormatter("text", "MatchReport", &MatchReportTextFormatter{})
	registry.RegisterFormatter("markdown", "MatchReport", &MatchReportMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.ScoreResult:
		return "ScoreResult"
	case types.JobRecord:
		return "JobRecord"
	case types.ResumeRecord:
		return "ResumeRecord"
	case types.KeywordMatchResult, *types.KeywordMatchResult:
		return "KeywordMatchResult"
	case types.MatchReport:
		return "MatchReport"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// ScoreTextFormatter handles text formatting for scoring results
type ScoreTextFormatter struct{}

func (stf *ScoreTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ScoreResult)
	if !ok {
		return "", fmt.Errorf("expected ScoreResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== ATS COMPATIBILITY REPORT ===\n\n")
	if result.ResumeFile != "" {
		output.WriteString(fmt.Sprintf("Resume: %s\n", result.ResumeFile))
	}
	output.WriteString(fmt.Sprintf("Overall Score: %.2f/100 (Grade %s)\n",
		result.OverallScore, scoring.Grade(result.OverallScore)))
	output.WriteString(scoring.Interpretation(result.OverallScore))
	output.WriteString("\n\n")

	output.WriteString("=== COMPONENT SCORES ===\n")
	writeComponentLines(&output, result.Scores, "%-12s %.2f\n")
	output.WriteString("\n")

	if len(result.Feedback.Strengths) > 0 {
		output.WriteString("=== STRENGTHS ===\n")
		for _, strength := range result.Feedback.Strengths {
			output.WriteString(fmt.Sprintf("- %s\n", strength))
		}
		output.WriteString("\n")
	}

	if len(result.Feedback.Weaknesses) > 0 {
		output.WriteString("=== WEAKNESSES ===\n")
		for _, weakness := range result.Feedback.Weaknesses {
			output.WriteString(fmt.Sprintf("- %s\n", weakness))
		}
		output.WriteString("\n")
	}

	if len(result.Feedback.MissingKeywords) > 0 {
		output.WriteString("=== MISSING KEYWORDS ===\n")
		output.WriteString(strings.Join(result.Feedback.MissingKeywords, ", "))
		output.WriteString("\n\n")
	}

	if len(result.Feedback.MissingSkills) > 0 {
		output.WriteString("=== MISSING SKILLS ===\n")
		output.WriteString(strings.Join(result.Feedback.MissingSkills, ", "))
		output.WriteString("\n\n")
	}

	if len(result.Recommendations) > 0 {
		output.WriteString("=== RECOMMENDATIONS ===\n")
		for i, recommendation := range result.Recommendations {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, recommendation))
		}
	}

	return output.String(), nil
}

func (stf *ScoreTextFormatter) SupportedType() string {
	return "ScoreResult"
}

// writeComponentLines writes each component score with the given line format.
func writeComponentLines(output *strings.Builder, scores types.ComponentScores, lineFormat string) {
	components := []struct {
		name  string
		score float64
	}{
		{"Keywords", scores.Keywords},
		{"Hard Skills", scores.HardSkills},
		{"Soft Skills", scores.SoftSkills},
		{"Job Title", scores.JobTitle},
		{"Experience", scores.Experience},
		{"Education", scores.Education},
		{"Formatting", scores.Formatting},
	}
	for _, component := range components {
		output.WriteString(fmt.Sprintf(lineFormat, component.name, component.score))
	}
}

// ScoreMarkdownFormatter handles markdown formatting for scoring results
type ScoreMarkdownFormatter struct{}

func (smf *ScoreMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ScoreResult)
	if !ok {
		return "", fmt.Errorf("expected ScoreResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# ATS Compatibility Report\n\n")
	if result.ResumeFile != "" {
		output.WriteString(fmt.Sprintf("**Resume:** %s\n\n", result.ResumeFile))
	}
	output.WriteString(fmt.Sprintf("**Overall Score:** %.2f/100 (Grade %s)\n\n",
		result.OverallScore, scoring.Grade(result.OverallScore)))
	output.WriteString(fmt.Sprintf("*%s*\n\n", scoring.Interpretation(result.OverallScore)))

	output.WriteString("## Component Scores\n\n")
	output.WriteString("| Component | Score |\n")
	output.WriteString("|-----------|-------|\n")
	writeComponentLines(&output, result.Scores, "| %s | %.2f |\n")
	output.WriteString("\n")

	if len(result.Feedback.Strengths) > 0 {
		output.WriteString("## Strengths\n\n")
		for _, strength := range result.Feedback.Strengths {
			output.WriteString(fmt.Sprintf("- %s\n", strength))
		}
		output.WriteString("\n")
	}

	if len(result.Feedback.Weaknesses) > 0 {
		output.WriteString("## Weaknesses\n\n")
		for _, weakness := range result.Feedback.Weaknesses {
			output.WriteString(fmt.Sprintf("- %s\n", weakness))
		}
		output.WriteString("\n")
	}

	if len(result.Feedback.MissingKeywords) > 0 {
		output.WriteString("## Missing Keywords\n\n")
		output.WriteString(strings.Join(result.Feedback.MissingKeywords, ", "))
		output.WriteString("\n\n")
	}

	if len(result.Feedback.MissingSkills) > 0 {
		output.WriteString("## Missing Skills\n\n")
		output.WriteString(strings.Join(result.Feedback.MissingSkills, ", "))
		output.WriteString("\n\n")
	}

	if len(result.Recommendations) > 0 {
		output.WriteString("## Recommendations\n\n")
		for i, recommendation := range result.Recommendations {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, recommendation))
		}
	}

	return output.String(), nil
}

func (smf *ScoreMarkdownFormatter) SupportedType() string {
	return "ScoreResult"
}

// JobRecordTextFormatter handles text formatting for job analysis results
type JobRecordTextFormatter struct{}

func (jtf *JobRecordTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.JobRecord)
	if !ok {
		return "", fmt.Errorf("expected JobRecord, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== JOB DESCRIPTION ANALYSIS ===\n\n")
	output.WriteString(fmt.Sprintf("Job Title: %s\n", result.JobTitle))
	if result.EmploymentType != "" {
		output.WriteString(fmt.Sprintf("Employment Type: %s\n", result.EmploymentType))
	}
	if result.ExperienceRequired.Years != "" || result.ExperienceRequired.Level != "" {
		output.WriteString(fmt.Sprintf("Experience Required: %s years, %s level\n",
			orDash(result.ExperienceRequired.Years), orDash(result.ExperienceRequired.Level)))
	}
	if result.EducationRequired.DegreeLevel != "" {
		output.WriteString(fmt.Sprintf("Education Required: %s\n", result.EducationRequired.DegreeLevel))
	}
	output.WriteString("\n")

	writeSkillSection(&output, "=== REQUIRED SKILLS ===", result.RequiredHardSkills, result.RequiredSoftSkills)
	writeSkillSection(&output, "=== PREFERRED SKILLS ===", result.PreferredHardSkills, result.PreferredSoftSkills)

	if len(result.Keywords.SingleWords) > 0 {
		output.WriteString("=== TOP KEYWORDS ===\n")
		for _, kw := range result.Keywords.SingleWords {
			output.WriteString(fmt.Sprintf("%-20s %d\n", kw.Keyword, kw.Frequency))
		}
		output.WriteString("\n")
	}

	if len(result.Keywords.Phrases) > 0 {
		output.WriteString("=== KEY PHRASES ===\n")
		for _, phrase := range result.Keywords.Phrases {
			output.WriteString(fmt.Sprintf("- %s\n", phrase))
		}
		output.WriteString("\n")
	}

	if len(result.Requirements.MustHave) > 0 {
		output.WriteString("=== MUST HAVE ===\n")
		for _, item := range result.Requirements.MustHave {
			output.WriteString(fmt.Sprintf("- %s\n", item))
		}
		output.WriteString("\n")
	}

	if len(result.Requirements.NiceToHave) > 0 {
		output.WriteString("=== NICE TO HAVE ===\n")
		for _, item := range result.Requirements.NiceToHave {
			output.WriteString(fmt.Sprintf("- %s\n", item))
		}
		output.WriteString("\n")
	}

	if len(result.Requirements.Responsibilities) > 0 {
		output.WriteString("=== RESPONSIBILITIES ===\n")
		for _, item := range result.Requirements.Responsibilities {
			output.WriteString(fmt.Sprintf("- %s\n", item))
		}
	}

	return output.String(), nil
}

func (jtf *JobRecordTextFormatter) SupportedType() string {
	return "JobRecord"
}

func writeSkillSection(output *strings.Builder, header string, hard, soft []string) {
	if len(hard) == 0 && len(soft) == 0 {
		return
	}
	output.WriteString(header)
	output.WriteString("\n")
	if len(hard) > 0 {
		output.WriteString(fmt.Sprintf("Hard: %s\n", strings.Join(hard, ", ")))
	}
	if len(soft) > 0 {
		output.WriteString(fmt.Sprintf("Soft: %s\n", strings.Join(soft, ", ")))
	}
	output.WriteString("\n")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// JobRecordMarkdownFormatter handles markdown formatting for job analysis results
type JobRecordMarkdownFormatter struct{}

func (jmf *JobRecordMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.JobRecord)
	if !ok {
		return "", fmt.Errorf("expected JobRecord, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Job Description Analysis\n\n")
	output.WriteString(fmt.Sprintf("**Job Title:** %s\n\n", result.JobTitle))
	if result.EmploymentType != "" {
		output.WriteString(fmt.Sprintf("**Employment Type:** %s\n\n", result.EmploymentType))
	}
	if result.ExperienceRequired.Years != "" || result.ExperienceRequired.Level != "" {
		output.WriteString(fmt.Sprintf("**Experience Required:** %s years, %s level\n\n",
			orDash(result.ExperienceRequired.Years), orDash(result.ExperienceRequired.Level)))
	}
	if result.EducationRequired.DegreeLevel != "" {
		output.WriteString(fmt.Sprintf("**Education Required:** %s\n\n", result.EducationRequired.DegreeLevel))
	}

	if len(result.RequiredHardSkills) > 0 || len(result.RequiredSoftSkills) > 0 {
		output.WriteString("## Required Skills\n\n")
		if len(result.RequiredHardSkills) > 0 {
			output.WriteString(fmt.Sprintf("**Hard:** %s\n\n", strings.Join(result.RequiredHardSkills, ", ")))
		}
		if len(result.RequiredSoftSkills) > 0 {
			output.WriteString(fmt.Sprintf("**Soft:** %s\n\n", strings.Join(result.RequiredSoftSkills, ", ")))
		}
	}

	if len(result.PreferredHardSkills) > 0 || len(result.PreferredSoftSkills) > 0 {
		output.WriteString("## Preferred Skills\n\n")
		if len(result.PreferredHardSkills) > 0 {
			output.WriteString(fmt.Sprintf("**Hard:** %s\n\n", strings.Join(result.PreferredHardSkills, ", ")))
		}
		if len(result.PreferredSoftSkills) > 0 {
			output.WriteString(fmt.Sprintf("**Soft:** %s\n\n", strings.Join(result.PreferredSoftSkills, ", ")))
		}
	}

	if len(result.Keywords.SingleWords) > 0 {
		output.WriteString("## Top Keywords\n\n")
		output.WriteString("| Keyword | Frequency |\n")
		output.WriteString("|---------|-----------|\n")
		for _, kw := range result.Keywords.SingleWords {
			output.WriteString(fmt.Sprintf("| %s | %d |\n", kw.Keyword, kw.Frequency))
		}
		output.WriteString("\n")
	}

	if len(result.Requirements.MustHave) > 0 {
		output.WriteString("## Must Have\n\n")
		for _, item := range result.Requirements.MustHave {
			output.WriteString(fmt.Sprintf("- %s\n", item))
		}
		output.WriteString("\n")
	}

	if len(result.Requirements.NiceToHave) > 0 {
		output.WriteString("## Nice to Have\n\n")
		for _, item := range result.Requirements.NiceToHave {
			output.WriteString(fmt.Sprintf("- %s\n", item))
		}
		output.WriteString("\n")
	}

	if len(result.Requirements.Responsibilities) > 0 {
		output.WriteString("## Responsibilities\n\n")
		for _, item := range result.Requirements.Responsibilities {
			output.WriteString(fmt.Sprintf("- %s\n", item))
		}
	}

	return output.String(), nil
}

func (jmf *JobRecordMarkdownFormatter) SupportedType() string {
	return "JobRecord"
}

// ResumeRecordTextFormatter handles text formatting for parsed resumes
type ResumeRecordTextFormatter struct{}

func (rtf *ResumeRecordTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ResumeRecord)
	if !ok {
		return "", fmt.Errorf("expected ResumeRecord, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== PARSED RESUME ===\n\n")
	if result.FileName != "" {
		output.WriteString(fmt.Sprintf("File: %s\n", result.FileName))
	}

	output.WriteString("Contact:\n")
	output.WriteString(fmt.Sprintf("  Email:    %s\n", orDash(result.ContactInfo.Email)))
	output.WriteString(fmt.Sprintf("  Phone:    %s\n", orDash(result.ContactInfo.Phone)))
	output.WriteString(fmt.Sprintf("  LinkedIn: %s\n", orDash(result.ContactInfo.LinkedIn)))
	output.WriteString(fmt.Sprintf("  GitHub:   %s\n", orDash(result.ContactInfo.GitHub)))
	output.WriteString("\n")

	if len(result.HardSkills) > 0 {
		output.WriteString(fmt.Sprintf("Hard Skills: %s\n", strings.Join(result.HardSkills, ", ")))
	}
	if len(result.SoftSkills) > 0 {
		output.WriteString(fmt.Sprintf("Soft Skills: %s\n", strings.Join(result.SoftSkills, ", ")))
	}
	if len(result.Keywords) > 0 {
		output.WriteString(fmt.Sprintf("Keywords: %s\n", strings.Join(result.Keywords, ", ")))
	}

	return output.String(), nil
}

func (rtf *ResumeRecordTextFormatter) SupportedType() string {
	return "ResumeRecord"
}

// ResumeRecordMarkdownFormatter handles markdown formatting for parsed resumes
type ResumeRecordMarkdownFormatter struct{}

func (rmf *ResumeRecordMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ResumeRecord)
	if !ok {
		return "", fmt.Errorf("expected ResumeRecord, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Parsed Resume\n\n")
	if result.FileName != "" {
		output.WriteString(fmt.Sprintf("**File:** %s\n\n", result.FileName))
	}

	output.WriteString("## Contact\n\n")
	output.WriteString(fmt.Sprintf("- **Email:** %s\n", orDash(result.ContactInfo.Email)))
	output.WriteString(fmt.Sprintf("- **Phone:** %s\n", orDash(result.ContactInfo.Phone)))
	output.WriteString(fmt.Sprintf("- **LinkedIn:** %s\n", orDash(result.ContactInfo.LinkedIn)))
	output.WriteString(fmt.Sprintf("- **GitHub:** %s\n\n", orDash(result.ContactInfo.GitHub)))

	if len(result.HardSkills) > 0 {
		output.WriteString(fmt.Sprintf("**Hard Skills:** %s\n\n", strings.Join(result.HardSkills, ", ")))
	}
	if len(result.SoftSkills) > 0 {
		output.WriteString(fmt.Sprintf("**Soft Skills:** %s\n\n", strings.Join(result.SoftSkills, ", ")))
	}
	if len(result.Keywords) > 0 {
		output.WriteString(fmt.Sprintf("**Keywords:** %s\n", strings.Join(result.Keywords, ", ")))
	}

	return output.String(), nil
}

func (rmf *ResumeRecordMarkdownFormatter) SupportedType() string {
	return "ResumeRecord"
}

// MatchTextFormatter handles text formatting for keyword match results
type MatchTextFormatter struct{}

func (mtf *MatchTextFormatter) Format(data any) (string, error) {
	result, err := toMatchResult(data)
	if err != nil {
		return "", err
	}

	var output strings.Builder

	output.WriteString("=== KEYWORD MATCH ===\n\n")
	output.WriteString(fmt.Sprintf("Match Rate: %.0f%%\n\n", result.MatchRate))

	if len(result.ExactMatches) > 0 {
		output.WriteString("Exact Matches:\n")
		for _, match := range result.ExactMatches {
			output.WriteString(fmt.Sprintf("- %s\n", match))
		}
		output.WriteString("\n")
	}

	if len(result.SemanticMatches) > 0 {
		output.WriteString("Semantic Matches:\n")
		for _, match := range result.SemanticMatches {
			output.WriteString(fmt.Sprintf("- %s ~ %s (%.0f%%)\n",
				match.JobKeyword, match.ResumeKeyword, match.Confidence*100))
		}
		output.WriteString("\n")
	}

	if len(result.RelatedMatches) > 0 {
		output.WriteString("Related Matches:\n")
		for _, match := range result.RelatedMatches {
			output.WriteString(fmt.Sprintf("- %s ~ %s: %s (%.0f%%)\n",
				match.JobKeyword, match.ResumeKeyword, match.Relationship, match.Confidence*100))
		}
		output.WriteString("\n")
	}

	if len(result.UnmatchedCritical) > 0 {
		output.WriteString("Unmatched (critical):\n")
		for _, keyword := range result.UnmatchedCritical {
			output.WriteString(fmt.Sprintf("- %s\n", keyword))
		}
		output.WriteString("\n")
	}

	if len(result.UnmatchedOptional) > 0 {
		output.WriteString("Unmatched (optional):\n")
		for _, keyword := range result.UnmatchedOptional {
			output.WriteString(fmt.Sprintf("- %s\n", keyword))
		}
		output.WriteString("\n")
	}

	if result.Analysis != "" {
		output.WriteString("Analysis:\n")
		output.WriteString(result.Analysis)
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (mtf *MatchTextFormatter) SupportedType() string {
	return "KeywordMatchResult"
}

// MatchMarkdownFormatter handles markdown formatting for keyword match results
type MatchMarkdownFormatter struct{}

func (mmf *MatchMarkdownFormatter) Format(data any) (string, error) {
	result, err := toMatchResult(data)
	if err != nil {
		return "", err
	}

	var output strings.Builder

	output.WriteString("# Keyword Match\n\n")
	output.WriteString(fmt.Sprintf("**Match Rate:** %.0f%%\n\n", result.MatchRate))

	if len(result.ExactMatches) > 0 {
		output.WriteString("## Exact Matches\n\n")
		for _, match := range result.ExactMatches {
			output.WriteString(fmt.Sprintf("- %s\n", match))
		}
		output.WriteString("\n")
	}

	if len(result.SemanticMatches) > 0 {
		output.WriteString("## Semantic Matches\n\n")
		for _, match := range result.SemanticMatches {
			output.WriteString(fmt.Sprintf("- %s ~ %s (%.0f%%)\n",
				match.JobKeyword, match.ResumeKeyword, match.Confidence*100))
		}
		output.WriteString("\n")
	}

	if len(result.RelatedMatches) > 0 {
		output.WriteString("## Related Matches\n\n")
		for _, match := range result.RelatedMatches {
			output.WriteString(fmt.Sprintf("- %s ~ %s: %s (%.0f%%)\n",
				match.JobKeyword, match.ResumeKeyword, match.Relationship, match.Confidence*100))
		}
		output.WriteString("\n")
	}

	if len(result.UnmatchedCritical) > 0 {
		output.WriteString("## Unmatched (Critical)\n\n")
		for _, keyword := range result.UnmatchedCritical {
			output.WriteString(fmt.Sprintf("- %s\n", keyword))
		}
		output.WriteString("\n")
	}

	if len(result.UnmatchedOptional) > 0 {
		output.WriteString("## Unmatched (Optional)\n\n")
		for _, keyword := range result.UnmatchedOptional {
			output.WriteString(fmt.Sprintf("- %s\n", keyword))
		}
		output.WriteString("\n")
	}

	if result.Analysis != "" {
		output.WriteString("## Analysis\n\n")
		output.WriteString(result.Analysis)
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (mmf *MatchMarkdownFormatter) SupportedType() string {
	return "KeywordMatchResult"
}

// MatchReportTextFormatter handles text formatting for the match command output
type MatchReportTextFormatter struct{}

func (mrf *MatchReportTextFormatter) Format(data any) (string, error) {
	report, ok := data.(types.MatchReport)
	if !ok {
		return "", fmt.Errorf("expected MatchReport, got %T", data)
	}

	matchSection, err := (&MatchTextFormatter{}).Format(report.Match)
	if err != nil {
		return "", err
	}

	var output strings.Builder
	output.WriteString(matchSection)

	if report.Qualifications != nil {
		output.WriteString("\n=== QUALIFICATION PROFILE ===\n\n")
		output.WriteString(fmt.Sprintf("Summary: %s\n", report.Qualifications.Summary))
		if report.Qualifications.YearsExperience != "" {
			output.WriteString(fmt.Sprintf("Years of Experience: %s\n", report.Qualifications.YearsExperience))
		}
		if len(report.Qualifications.KeySkills) > 0 {
			output.WriteString(fmt.Sprintf("Key Skills: %s\n", strings.Join(report.Qualifications.KeySkills, ", ")))
		}
		if len(report.Qualifications.Achievements) > 0 {
			output.WriteString("Achievements:\n")
			for _, achievement := range report.Qualifications.Achievements {
				output.WriteString(fmt.Sprintf("- %s\n", achievement))
			}
		}
	}

	return output.String(), nil
}

func (mrf *MatchReportTextFormatter) SupportedType() string {
	return "MatchReport"
}

// MatchReportMarkdownFormatter handles markdown formatting for the match command output
type MatchReportMarkdownFormatter struct{}

func (mrmf *MatchReportMarkdownFormatter) Format(data any) (string, error) {
	report, ok := data.(types.MatchReport)
	if !ok {
		return "", fmt.Errorf("expected MatchReport, got %T", data)
	}

	matchSection, err := (&MatchMarkdownFormatter{}).Format(report.Match)
	if err != nil {
		return "", err
	}

	var output strings.Builder
	output.WriteString(matchSection)

	if report.Qualifications != nil {
		output.WriteString("\n## Qualification Profile\n\n")
		output.WriteString(fmt.Sprintf("**Summary:** %s\n\n", report.Qualifications.Summary))
		if report.Qualifications.YearsExperience != "" {
			output.WriteString(fmt.Sprintf("**Years of Experience:** %s\n\n", report.Qualifications.YearsExperience))
		}
		if len(report.Qualifications.KeySkills) > 0 {
			output.WriteString(fmt.Sprintf("**Key Skills:** %s\n\n", strings.Join(report.Qualifications.KeySkills, ", ")))
		}
		if len(report.Qualifications.Achievements) > 0 {
			output.WriteString("**Achievements:**\n\n")
			for _, achievement := range report.Qualifications.Achievements {
				output.WriteString(fmt.Sprintf("- %s\n", achievement))
			}
		}
	}

	return output.String(), nil
}

func (mrmf *MatchReportMarkdownFormatter) SupportedType() string {
	return "MatchReport"
}

func toMatchResult(data any) (types.KeywordMatchResult, error) {
	switch v := data.(type) {
	case types.KeywordMatchResult:
		return v, nil
	case *types.KeywordMatchResult:
		return *v, nil
	default:
		return types.KeywordMatchResult{}, fmt.Errorf("expected KeywordMatchResult, got %T", data)
	}
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
