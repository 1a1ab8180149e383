package formatters

import (
	"strings"
	"testing"

	"atscheck/internal/types"
)

func sampleScoreResult() types.ScoreResult {
	return types.ScoreResult{
		ResumeFile:   "resume.txt",
		OverallScore: 78.5,
		Scores: types.ComponentScores{
			Keywords:   80,
			Skills:     75.5,
			HardSkills: 78,
			SoftSkills: 70,
			JobTitle:   100,
			Experience: 70,
			Education:  90,
			Formatting: 85,
		},
		Feedback: types.DetailedFeedback{
			Strengths:       []string{"Strong keyword alignment with job requirements"},
			Weaknesses:      []string{"Low soft skill coverage"},
			MissingKeywords: []string{"kubernetes", "terraform"},
		},
		Recommendations: []string{"Add these keywords to your resume: kubernetes, terraform"},
	}
}

func TestFormatScoreResult(t *testing.T) {
	registry := NewFormatterRegistry()

	t.Run("json", func(t *testing.T) {
		out, err := registry.Format(sampleScoreResult(), "json")
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if !strings.Contains(out, `"overall_score": 78.5`) {
			t.Errorf("JSON output missing overall score: %s", out)
		}
	})

	t.Run("text includes grade and interpretation", func(t *testing.T) {
		out, err := registry.Format(sampleScoreResult(), "text")
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if !strings.Contains(out, "Grade C") {
			t.Errorf("Text output missing grade: %s", out)
		}
		if !strings.Contains(out, "Fair match") {
			t.Errorf("Text output missing interpretation: %s", out)
		}
		if !strings.Contains(out, "kubernetes, terraform") {
			t.Errorf("Text output missing keywords: %s", out)
		}
	})

	t.Run("markdown includes component table", func(t *testing.T) {
		out, err := registry.Format(sampleScoreResult(), "markdown")
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if !strings.Contains(out, "| Component | Score |") {
			t.Errorf("Markdown output missing component table: %s", out)
		}
		if !strings.Contains(out, "# ATS Compatibility Report") {
			t.Errorf("Markdown output missing title: %s", out)
		}
	})

	t.Run("unknown format errors", func(t *testing.T) {
		if _, err := registry.Format(sampleScoreResult(), "xml"); err == nil {
			t.Error("Expected error for unknown format")
		}
	})
}

func TestFormatJobRecord(t *testing.T) {
	registry := NewFormatterRegistry()

	job := types.JobRecord{
		JobTitle:           "Senior Software Engineer",
		EmploymentType:     "full-time",
		RequiredHardSkills: []string{"Go", "PostgreSQL"},
		ExperienceRequired: types.ExperienceRequirement{Years: "5", Level: "senior"},
		Keywords: types.KeywordInfo{
			SingleWords: []types.KeywordCount{{Keyword: "golang", Frequency: 4}},
		},
		Requirements: types.Requirements{
			MustHave: []string{"5 years of Go experience"},
		},
	}

	out, err := registry.Format(job, "text")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	for _, want := range []string{"Senior Software Engineer", "full-time", "Go, PostgreSQL", "golang", "5 years of Go experience"} {
		if !strings.Contains(out, want) {
			t.Errorf("Text output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatKeywordMatchResult(t *testing.T) {
	registry := NewFormatterRegistry()

	match := &types.KeywordMatchResult{
		ExactMatches:      []string{"python"},
		UnmatchedCritical: []string{"kubernetes"},
		MatchRate:         50,
	}

	t.Run("pointer and value both route to match formatter", func(t *testing.T) {
		for _, data := range []any{match, *match} {
			out, err := registry.Format(data, "text")
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			if !strings.Contains(out, "Match Rate: 50%") {
				t.Errorf("Output missing match rate: %s", out)
			}
		}
	})
}

func TestFormatFallbackToJSON(t *testing.T) {
	registry := NewFormatterRegistry()

	// ResumeRecord has no markdown formatter; json handles any type.
	out, err := registry.Format(types.ResumeRecord{Keywords: []string{"go"}}, "json")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !strings.Contains(out, `"keywords"`) {
		t.Errorf("JSON fallback output missing keywords field: %s", out)
	}
}
