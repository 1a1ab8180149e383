package scoring

import (
	"strings"

	"atscheck/internal/types"
)

// Variation table used only by the missing-skills feedback path. The score
// components intentionally use plain set intersection; this looser matching
// for feedback is preserved behavior, flagged for product review rather than
// unified.
var feedbackSkillVariations = map[string][]string{
	"javascript":              {"js", "ecmascript"},
	"typescript":              {"ts"},
	"react":                   {"reactjs", "react.js"},
	"angular":                 {"angularjs"},
	"node.js":                 {"nodejs", "node"},
	"html":                    {"html5"},
	"css":                     {"css3"},
	"aws":                     {"amazon web services"},
	"machine learning":        {"ml"},
	"artificial intelligence": {"ai"},
}

// generateFeedback builds the rule-based strengths/weaknesses/missing lists
// and the score breakdown. Deterministic: no randomness, no time dependence.
func generateFeedback(resume types.ResumeRecord, job types.JobRecord, scores types.ComponentScores) types.DetailedFeedback {
	feedback := types.DetailedFeedback{
		Strengths:         []string{},
		Weaknesses:        []string{},
		MissingKeywords:   []string{},
		MissingSkills:     []string{},
		MissingHardSkills: []string{},
		MissingSoftSkills: []string{},
		ScoreBreakdown: map[string]types.ComponentBreakdown{
			"keywords":    {Score: scores.Keywords, Weight: WeightKeywords},
			"skills":      {Score: scores.Skills, Weight: 0},
			"hard_skills": {Score: scores.HardSkills, Weight: WeightHardSkills},
			"soft_skills": {Score: scores.SoftSkills, Weight: WeightSoftSkills},
			"job_title":   {Score: scores.JobTitle, Weight: WeightJobTitle},
			"experience":  {Score: scores.Experience, Weight: WeightExperience},
			"education":   {Score: scores.Education, Weight: WeightEducation},
			"formatting":  {Score: scores.Formatting, Weight: WeightFormatting},
		},
	}

	if scores.Keywords >= strengthThreshold {
		feedback.Strengths = append(feedback.Strengths, "Excellent keyword match with job description")
	}
	if scores.HardSkills >= strengthThreshold {
		feedback.Strengths = append(feedback.Strengths, "Strong technical/hard skills alignment")
	}
	if scores.SoftSkills >= strengthThreshold {
		feedback.Strengths = append(feedback.Strengths, "Excellent soft skills match")
	}
	if scores.JobTitle >= strengthThreshold {
		feedback.Strengths = append(feedback.Strengths, "Strong job title alignment")
	}
	if scores.Skills >= strengthThreshold {
		feedback.Strengths = append(feedback.Strengths, "Strong overall skills alignment")
	}
	if scores.Formatting >= formatStrengthMinimum {
		feedback.Strengths = append(feedback.Strengths, "ATS-friendly formatting")
	}

	if scores.Keywords < weaknessThreshold {
		feedback.Weaknesses = append(feedback.Weaknesses, "Low keyword match - consider using more terms from job description")
	}
	if scores.HardSkills < weaknessThreshold {
		feedback.Weaknesses = append(feedback.Weaknesses, "Technical/hard skills section needs improvement")
	}
	if scores.SoftSkills < weaknessThreshold {
		feedback.Weaknesses = append(feedback.Weaknesses, "Soft skills section could be stronger")
	}
	if scores.JobTitle < weaknessThreshold {
		feedback.Weaknesses = append(feedback.Weaknesses, "Job title alignment could be improved")
	}
	if scores.Experience < weaknessThreshold {
		feedback.Weaknesses = append(feedback.Weaknesses, "Experience section could be stronger")
	}

	resumeText := strings.ToLower(resume.RawText)

	for i, kw := range job.Keywords.SingleWords {
		if i >= topKeywordsConsidered {
			break
		}
		if kw.Keyword != "" && !strings.Contains(resumeText, strings.ToLower(kw.Keyword)) {
			feedback.MissingKeywords = append(feedback.MissingKeywords, kw.Keyword)
		}
	}

	resumeHard := toLowerSet(resume.HardSkills)
	resumeSoft := toLowerSet(resume.SoftSkills)

	for _, skill := range job.RequiredHardSkills {
		if _, ok := resumeHard[strings.ToLower(skill)]; !ok {
			feedback.MissingHardSkills = append(feedback.MissingHardSkills, skill)
		}
	}
	for _, skill := range job.RequiredSoftSkills {
		if _, ok := resumeSoft[strings.ToLower(skill)]; !ok {
			feedback.MissingSoftSkills = append(feedback.MissingSoftSkills, skill)
		}
	}

	// Legacy combined missing-skills list with looser matching.
	allResumeSkills := map[string]struct{}{}
	for _, list := range [][]string{resume.Skills, resume.HardSkills, resume.SoftSkills} {
		for _, skill := range list {
			allResumeSkills[strings.TrimSpace(strings.ToLower(skill))] = struct{}{}
		}
	}

	for _, skill := range job.RequiredSkills {
		if !skillCovered(strings.TrimSpace(strings.ToLower(skill)), allResumeSkills) {
			feedback.MissingSkills = append(feedback.MissingSkills, skill)
		}
	}

	return feedback
}

// skillCovered checks exact membership, then substring containment for
// skills longer than 2 characters, then the variation table in both
// directions.
func skillCovered(skill string, resumeSkills map[string]struct{}) bool {
	if _, ok := resumeSkills[skill]; ok {
		return true
	}

	for resumeSkill := range resumeSkills {
		if len(skill) > 2 && (strings.Contains(resumeSkill, skill) || strings.Contains(skill, resumeSkill)) {
			return true
		}

		if variations, ok := feedbackSkillVariations[skill]; ok {
			for _, v := range variations {
				if resumeSkill == v {
					return true
				}
			}
		}
		if variations, ok := feedbackSkillVariations[resumeSkill]; ok {
			for _, v := range variations {
				if skill == v {
					return true
				}
			}
		}
	}

	return false
}

// generateRecommendations produces at most maxRecommendations actionable
// items in fixed priority order, ending with a positive fallback when
// nothing else triggered.
func generateRecommendations(resume types.ResumeRecord, scores types.ComponentScores, feedback types.DetailedFeedback) []string {
	recommendations := []string{}

	if len(feedback.MissingKeywords) > 0 {
		recommendations = append(recommendations,
			"Include these important keywords: "+joinSample(feedback.MissingKeywords, 3))
	}

	if len(feedback.MissingSkills) > 0 {
		recommendations = append(recommendations,
			"Add these required skills if you have them: "+joinSample(feedback.MissingSkills, 3))
	}

	if scores.Keywords < recommendThreshold {
		recommendations = append(recommendations,
			"Optimize your resume with more keywords from the job description")
	}
	if scores.Skills < recommendThreshold {
		recommendations = append(recommendations,
			"Expand your skills section with relevant technical and soft skills")
	}
	if scores.Experience < recommendThreshold {
		recommendations = append(recommendations,
			"Highlight relevant experience using action verbs and quantifiable achievements")
	}
	if scores.Education < recommendThreshold {
		recommendations = append(recommendations,
			"Ensure your education section clearly shows your degree and relevant coursework")
	}
	if scores.Formatting < formatRecommendMinimum {
		recommendations = append(recommendations,
			"Use a simple, ATS-friendly format with clear section headers")
	}

	if resume.ContactInfo.LinkedIn == "" {
		recommendations = append(recommendations, "Add your LinkedIn profile URL")
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Your resume is well-optimized for this position!")
	}

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}
