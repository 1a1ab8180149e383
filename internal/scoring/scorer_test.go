package scoring

import (
	"reflect"
	"strings"
	"testing"

	"atscheck/internal/analyzer"
	"atscheck/internal/parser"
	"atscheck/internal/types"
)

func TestWeightSum(t *testing.T) {
	if WeightSum != 1.0 {
		t.Errorf("component weights sum to %v, want exactly 1.0", WeightSum)
	}
}

func TestNoDataDefaults(t *testing.T) {
	s := NewScorer()

	result := s.Score(types.ResumeRecord{RawText: "", Skills: []string{}}, types.JobRecord{})

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"keywords", result.Scores.Keywords, 50.0},
		{"hard skills", result.Scores.HardSkills, 75.0},
		{"soft skills", result.Scores.SoftSkills, 80.0},
		{"job title", result.Scores.JobTitle, 75.0},
		{"experience", result.Scores.Experience, 70.0},
		{"education", result.Scores.Education, 70.0},
		// 100 - 30 (empty text) - 10 (no email) - 5 (no phone) - 15 (missing sections)
		{"formatting", result.Scores.Formatting, 40.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("score = %v, want %v", tt.got, tt.want)
			}
		})
	}

	t.Run("legacy skills score", func(t *testing.T) {
		want := round2(75.0*0.7 + 80.0*0.3)
		if result.Scores.Skills != want {
			t.Errorf("skills = %v, want %v", result.Scores.Skills, want)
		}
	})
}

func TestScoreIdempotence(t *testing.T) {
	s := NewScorer()
	resume := types.ResumeRecord{
		RawText:    "Senior Python developer with 5 years experience in education and skills training",
		Skills:     []string{"Python", "Django"},
		HardSkills: []string{"Python", "Django"},
		SoftSkills: []string{"Leadership"},
	}
	job := types.JobRecord{
		JobTitle:           "Python Developer",
		RequiredHardSkills: []string{"Python"},
		Keywords: types.KeywordInfo{
			SingleWords: []types.KeywordCount{{Keyword: "python", Frequency: 3}},
		},
	}

	first := s.Score(resume, job)
	second := s.Score(resume, job)

	if !reflect.DeepEqual(first, second) {
		t.Error("scoring identical inputs produced different results")
	}
}

func TestScoreRangeInvariant(t *testing.T) {
	s := NewScorer()

	inputs := []struct {
		name   string
		resume types.ResumeRecord
		job    types.JobRecord
	}{
		{"empty everything", types.ResumeRecord{}, types.JobRecord{}},
		{
			"perfect overlap",
			types.ResumeRecord{
				RawText:     strings.Repeat("python django experience education skills ", 10),
				HardSkills:  []string{"Python", "Django"},
				SoftSkills:  []string{"Communication"},
				FileFormat:  ".pdf",
				ContactInfo: types.ContactInfo{Email: "a@b.com", Phone: "555-123-4567"},
			},
			types.JobRecord{
				JobTitle:            "Python Developer",
				RequiredHardSkills:  []string{"Python", "Django"},
				RequiredSoftSkills:  []string{"Communication"},
				PreferredHardSkills: []string{"Kubernetes"},
				ExperienceRequired:  types.ExperienceRequirement{Years: "3", Level: "senior"},
				EducationRequired: types.EducationRequirement{
					DegreeLevel:    "bachelor",
					FieldsOfStudy:  []string{"computer science"},
					Certifications: []string{"AWS Certified", "PMP", "CISSP", "CKA", "CKS", "GCP Certified", "Azure Certified"},
				},
			},
		},
		{
			"total mismatch",
			types.ResumeRecord{RawText: "unrelated text"},
			types.JobRecord{
				JobTitle:           "Quantum Basket Weaver",
				RequiredHardSkills: []string{"Loom", "Quantum"},
				Keywords: types.KeywordInfo{
					SingleWords: []types.KeywordCount{{Keyword: "weaving", Frequency: 9}},
					Phrases:     []string{"basket weaving"},
				},
			},
		},
	}

	for _, tt := range inputs {
		t.Run(tt.name, func(t *testing.T) {
			result := s.Score(tt.resume, tt.job)
			components := map[string]float64{
				"overall":     result.OverallScore,
				"keywords":    result.Scores.Keywords,
				"skills":      result.Scores.Skills,
				"hard_skills": result.Scores.HardSkills,
				"soft_skills": result.Scores.SoftSkills,
				"job_title":   result.Scores.JobTitle,
				"experience":  result.Scores.Experience,
				"education":   result.Scores.Education,
				"formatting":  result.Scores.Formatting,
			}
			for name, score := range components {
				if score < 0 || score > 100 {
					t.Errorf("%s = %v, out of [0,100]", name, score)
				}
			}
		})
	}
}

func TestRecommendationCap(t *testing.T) {
	s := NewScorer()

	// A resume missing everything triggers every recommendation rule.
	resume := types.ResumeRecord{RawText: "short"}
	job := types.JobRecord{
		JobTitle:           "Platform Engineer",
		RequiredSkills:     []string{"Go", "Rust", "Zig", "Erlang"},
		RequiredHardSkills: []string{"Go", "Rust", "Zig", "Erlang"},
		Keywords: types.KeywordInfo{
			SingleWords: []types.KeywordCount{
				{Keyword: "platform", Frequency: 5},
				{Keyword: "reliability", Frequency: 4},
				{Keyword: "distributed", Frequency: 3},
			},
		},
	}

	result := s.Score(resume, job)
	if len(result.Recommendations) > 5 {
		t.Errorf("got %d recommendations, want at most 5", len(result.Recommendations))
	}
	if len(result.Recommendations) == 0 {
		t.Error("expected recommendations for a weak resume")
	}
}

func TestRecommendationFallback(t *testing.T) {
	s := NewScorer()

	text := strings.Repeat("python django experience education skills senior lead architecture delivery ", 5)
	resume := types.ResumeRecord{
		RawText:     text,
		HardSkills:  []string{"Python", "Django"},
		SoftSkills:  []string{"Communication"},
		FileFormat:  ".pdf",
		ContactInfo: types.ContactInfo{Email: "a@b.com", Phone: "555", LinkedIn: "linkedin.com/in/a"},
	}
	job := types.JobRecord{
		RequiredHardSkills: []string{"Python", "Django"},
		RequiredSoftSkills: []string{"Communication"},
		Keywords: types.KeywordInfo{
			SingleWords: []types.KeywordCount{{Keyword: "python", Frequency: 3}},
		},
	}

	result := s.Score(resume, job)
	want := []string{"Your resume is well-optimized for this position!"}
	if !reflect.DeepEqual(result.Recommendations, want) {
		t.Errorf("recommendations = %v, want positive fallback only", result.Recommendations)
	}
}

func TestEndToEndScenario(t *testing.T) {
	resumeText := "Python Django developer\n5+ years of experience building web platforms.\nSkills: Python, Django, PostgreSQL\nEducation: BSc\nEmail: a@b.com Phone: 555-123-4567"
	jobText := "Python Developer\n\nRequired skills: Python, Django. 3+ years experience required."

	record := parser.NewResumeParser().Parse(resumeText, "resume.pdf", ".pdf")
	job := analyzer.NewJobAnalyzer(0).Analyze(jobText)
	result := NewScorer().Score(record, job)

	if result.Scores.HardSkills < 90 {
		t.Errorf("hard skills = %v, want near-full required match", result.Scores.HardSkills)
	}
	if result.Scores.Experience < 80 {
		t.Errorf("experience = %v, want >= 80 (base + years sufficiency)", result.Scores.Experience)
	}
	if result.Scores.Formatting < 85 {
		t.Errorf("formatting = %v, want >= 85", result.Scores.Formatting)
	}
	if result.OverallScore <= 0 || result.OverallScore > 100 {
		t.Errorf("overall = %v, out of range", result.OverallScore)
	}
}

func TestJobTitleSentinelScoresDefault(t *testing.T) {
	s := NewScorer()
	result := s.Score(
		types.ResumeRecord{RawText: "software engineer with python"},
		types.JobRecord{JobTitle: types.UnknownPosition},
	)
	if result.Scores.JobTitle != 75.0 {
		t.Errorf("job title score = %v, want default 75.0", result.Scores.JobTitle)
	}
}

func TestMissingSkillVariationEquivalence(t *testing.T) {
	s := NewScorer()

	resume := types.ResumeRecord{
		RawText: strings.Repeat("experienced js engineer shipping education skills experience ", 3),
		Skills:  []string{"JS"},
	}
	job := types.JobRecord{
		RequiredSkills: []string{"JavaScript"},
	}

	result := s.Score(resume, job)
	for _, missing := range result.Feedback.MissingSkills {
		if strings.EqualFold(missing, "JavaScript") {
			t.Errorf("JavaScript reported missing despite JS variation in resume skills")
		}
	}
}

func TestScoreBreakdownComplete(t *testing.T) {
	s := NewScorer()
	result := s.Score(types.ResumeRecord{}, types.JobRecord{})

	for _, component := range []string{"keywords", "skills", "hard_skills", "soft_skills", "job_title", "experience", "education", "formatting"} {
		if _, ok := result.Feedback.ScoreBreakdown[component]; !ok {
			t.Errorf("score breakdown missing %q", component)
		}
	}
}

func BenchmarkScore(b *testing.B) {
	s := NewScorer()
	record := parser.NewResumeParser().Parse(
		"Senior Python developer with 8 years experience. Skills: Python, Django, Docker, Kubernetes, AWS. Education: BSc computer science. a@b.com 555-123-4567",
		"resume.pdf", ".pdf")
	job := analyzer.NewJobAnalyzer(0).Analyze(
		"Senior Python Developer\n\nRequired skills: Python, Django, Docker\n\nNice to have: Kubernetes\n\n5+ years of experience. Bachelor of Science in computer science.")

	for b.Loop() {
		s.Score(record, job)
	}
}
