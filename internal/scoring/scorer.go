// Package scoring computes the ATS compatibility score between a structured
// resume record and a structured job record. The scorer is a pure function
// of its two inputs: no I/O, no hidden state, safe for concurrent use.
package scoring

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"atscheck/internal/types"
)

// Component weights. These sum to exactly 1.0; WeightSum exists so tests can
// assert the invariant.
const (
	WeightKeywords   = 0.10
	WeightHardSkills = 0.30
	WeightSoftSkills = 0.20
	WeightJobTitle   = 0.10
	WeightExperience = 0.20
	WeightEducation  = 0.05
	WeightFormatting = 0.05
)

// WeightSum is the total of all component weights.
const WeightSum = WeightKeywords + WeightHardSkills + WeightSoftSkills +
	WeightJobTitle + WeightExperience + WeightEducation + WeightFormatting

// Neutral defaults applied when the job description carries no data for a
// component. Absence of data must not penalize the candidate.
const (
	defaultKeywordScore    = 50.0
	defaultHardSkillScore  = 75.0
	defaultSoftSkillScore  = 80.0
	defaultJobTitleScore   = 75.0
	baseExperienceScore    = 70.0
	baseEducationScore     = 70.0
	baseFormattingScore    = 100.0
	maxRecommendations     = 5
	topKeywordsConsidered  = 10
	topPhrasesConsidered   = 5
	strengthThreshold      = 80.0
	formatStrengthMinimum  = 90.0
	weaknessThreshold      = 60.0
	recommendThreshold     = 70.0
	formatRecommendMinimum = 80.0
)

var (
	resumeYearsPattern = regexp.MustCompile(`(\d+)\+?\s*years?`)

	titleIndicators = []string{
		"software engineer", "developer", "programmer", "analyst", "manager",
		"director", "lead", "senior", "junior", "principal", "architect",
		"consultant", "specialist", "coordinator", "supervisor", "designer",
		"data scientist", "product manager", "project manager", "engineer",
	}

	titleStopWords = map[string]struct{}{
		"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
		"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
		"with": {}, "by": {},
	}

	experienceLevelKeywords = map[string][]string{
		"entry":     {"entry level", "junior", "graduate", "intern"},
		"mid":       {"mid level", "intermediate", "3+ years", "5+ years"},
		"senior":    {"senior", "lead", "principal", "7+ years", "10+ years"},
		"executive": {"director", "vp", "chief", "head of"},
	}

	degreeKeywords = map[string][]string{
		"bachelor":  {"bachelor", "b.s.", "b.a.", "bsc", "ba"},
		"master":    {"master", "m.s.", "m.a.", "msc", "ma", "mba"},
		"phd":       {"phd", "ph.d", "doctorate", "doctoral"},
		"associate": {"associate"},
	}

	goodFileFormats = map[string]struct{}{
		".pdf": {}, ".docx": {}, ".doc": {},
	}

	resumeSections = []string{"experience", "education", "skills"}
)

// Scorer computes ATS compatibility scores. Stateless; a single instance
// may serve concurrent requests.
type Scorer struct{}

// NewScorer returns a scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score computes the seven component scores, the weighted overall score,
// detailed feedback and capped recommendations. Calling it twice with
// identical inputs yields identical results.
func (s *Scorer) Score(resume types.ResumeRecord, job types.JobRecord) types.ScoreResult {
	keywordScore := keywordScore(resume, job)
	hardSkillsScore := hardSkillsScore(resume, job)
	softSkillsScore := softSkillsScore(resume, job)
	jobTitleScore := jobTitleScore(resume, job)
	skillsScore := hardSkillsScore*0.7 + softSkillsScore*0.3
	experienceScore := experienceScore(resume, job)
	educationScore := educationScore(resume, job)
	formattingScore := formattingScore(resume)

	overall := keywordScore*WeightKeywords +
		hardSkillsScore*WeightHardSkills +
		softSkillsScore*WeightSoftSkills +
		jobTitleScore*WeightJobTitle +
		experienceScore*WeightExperience +
		educationScore*WeightEducation +
		formattingScore*WeightFormatting

	scores := types.ComponentScores{
		Keywords:   round2(keywordScore),
		Skills:     round2(skillsScore),
		HardSkills: round2(hardSkillsScore),
		SoftSkills: round2(softSkillsScore),
		JobTitle:   round2(jobTitleScore),
		Experience: round2(experienceScore),
		Education:  round2(educationScore),
		Formatting: round2(formattingScore),
	}

	feedback := generateFeedback(resume, job, scores)
	recommendations := generateRecommendations(resume, scores, feedback)

	return types.ScoreResult{
		ResumeFile:      resume.FileName,
		OverallScore:    round2(overall),
		Scores:          scores,
		Feedback:        feedback,
		Recommendations: recommendations,
	}
}

// keywordScore measures how many of the job's top keywords and phrases
// appear in the resume text as case-insensitive substrings.
func keywordScore(resume types.ResumeRecord, job types.JobRecord) float64 {
	resumeText := strings.ToLower(resume.RawText)

	important := []string{}
	for i, kw := range job.Keywords.SingleWords {
		if i >= topKeywordsConsidered {
			break
		}
		important = append(important, kw.Keyword)
	}
	for i, phrase := range job.Keywords.Phrases {
		if i >= topPhrasesConsidered {
			break
		}
		important = append(important, phrase)
	}

	if len(important) == 0 {
		return defaultKeywordScore
	}

	matched := 0
	for _, keyword := range important {
		if keyword != "" && strings.Contains(resumeText, strings.ToLower(keyword)) {
			matched++
		}
	}

	return clamp(float64(matched) / float64(len(important)) * 100)
}

// hardSkillsScore combines required (0.8) and preferred (0.2) hard-skill
// coverage. When the job lists no specific required/preferred hard skills,
// the whole-text hard-skill set stands in as the required set.
func hardSkillsScore(resume types.ResumeRecord, job types.JobRecord) float64 {
	resumeSkills := toLowerSet(resume.HardSkills)
	required := toLowerSet(job.RequiredHardSkills)
	preferred := toLowerSet(job.PreferredHardSkills)

	if len(required) == 0 && len(preferred) == 0 {
		required = toLowerSet(job.AllHardSkills)
	}
	if len(required) == 0 && len(preferred) == 0 {
		return defaultHardSkillScore
	}

	return clamp(coverage(resumeSkills, required)*0.8 + coverage(resumeSkills, preferred)*0.2)
}

// softSkillsScore mirrors hardSkillsScore with 0.6/0.4 weighting and a more
// lenient default, since postings rarely enumerate soft skills completely.
func softSkillsScore(resume types.ResumeRecord, job types.JobRecord) float64 {
	resumeSkills := toLowerSet(resume.SoftSkills)
	required := toLowerSet(job.RequiredSoftSkills)
	preferred := toLowerSet(job.PreferredSoftSkills)

	if len(required) == 0 && len(preferred) == 0 {
		required = toLowerSet(job.AllSoftSkills)
	}
	if len(required) == 0 && len(preferred) == 0 {
		return defaultSoftSkillScore
	}

	return clamp(coverage(resumeSkills, required)*0.6 + coverage(resumeSkills, preferred)*0.4)
}

// coverage is the matched fraction of want, as a percentage. An empty want
// set counts as full coverage.
func coverage(have, want map[string]struct{}) float64 {
	if len(want) == 0 {
		return 100
	}
	matched := 0
	for skill := range want {
		if _, ok := have[skill]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(want)) * 100
}

// jobTitleScore takes the best of two signals: word overlap between the job
// title and candidate title lines near the top of the resume, and coverage
// of the title's keywords across the whole resume text.
func jobTitleScore(resume types.ResumeRecord, job types.JobRecord) float64 {
	resumeText := strings.ToLower(resume.RawText)
	jobTitle := strings.ToLower(job.JobTitle)

	if jobTitle == "" || jobTitle == strings.ToLower(types.UnknownPosition) {
		return defaultJobTitleScore
	}

	titleWords := toLowerSet(strings.Fields(jobTitle))

	maxScore := 0.0
	for _, line := range extractResumeTitles(resumeText) {
		lineWords := toLowerSet(strings.Fields(strings.ToLower(line)))
		if len(titleWords) == 0 || len(lineWords) == 0 {
			continue
		}
		overlap := 0
		for word := range titleWords {
			if _, ok := lineWords[word]; ok {
				overlap++
			}
		}
		score := float64(overlap) / float64(len(titleWords)) * 100
		maxScore = math.Max(maxScore, score)
	}

	keywords := jobTitleKeywords(jobTitle)
	if len(keywords) > 0 {
		matches := 0
		for _, keyword := range keywords {
			if strings.Contains(resumeText, keyword) {
				matches++
			}
		}
		maxScore = math.Max(maxScore, float64(matches)/float64(len(keywords))*100)
	}

	return clamp(maxScore)
}

// extractResumeTitles returns lines among the first 10 that contain a known
// title indicator.
func extractResumeTitles(resumeText string) []string {
	titles := []string{}
	lines := strings.Split(resumeText, "\n")
	if len(lines) > 10 {
		lines = lines[:10]
	}

	for _, line := range lines {
		lineLower := strings.ToLower(strings.TrimSpace(line))
		for _, indicator := range titleIndicators {
			if strings.Contains(lineLower, indicator) {
				titles = append(titles, strings.TrimSpace(line))
				break
			}
		}
	}
	return titles
}

func jobTitleKeywords(jobTitle string) []string {
	keywords := []string{}
	for _, word := range strings.Fields(strings.ToLower(jobTitle)) {
		if _, stop := titleStopWords[word]; stop {
			continue
		}
		if len(word) > 2 {
			keywords = append(keywords, word)
		}
	}
	return keywords
}

// experienceScore starts at a neutral base, adds 20 when the resume mentions
// a keyword for the job's required level, and 10 when the resume's largest
// "N years" figure meets the requirement.
func experienceScore(resume types.ResumeRecord, job types.JobRecord) float64 {
	resumeText := strings.ToLower(resume.RawText)
	score := baseExperienceScore

	if keywords, ok := experienceLevelKeywords[job.ExperienceRequired.Level]; ok {
		for _, keyword := range keywords {
			if strings.Contains(resumeText, keyword) {
				score += 20
				break
			}
		}
	}

	if job.ExperienceRequired.Years != "" {
		maxYears := -1
		for _, m := range resumeYearsPattern.FindAllStringSubmatch(resumeText, -1) {
			if years, err := strconv.Atoi(m[1]); err == nil && years > maxYears {
				maxYears = years
			}
		}
		if maxYears >= 0 {
			requiredPart := strings.SplitN(job.ExperienceRequired.Years, "-", 2)[0]
			if required, err := strconv.Atoi(requiredPart); err == nil && maxYears >= required {
				score += 10
			}
		}
	}

	return clamp(score)
}

// educationScore starts at a neutral base, adds 20 for a degree-level match,
// 10 once for any required field of study, and 5 per matched certification.
func educationScore(resume types.ResumeRecord, job types.JobRecord) float64 {
	resumeText := strings.ToLower(resume.RawText)
	score := baseEducationScore

	if keywords, ok := degreeKeywords[job.EducationRequired.DegreeLevel]; ok {
		for _, keyword := range keywords {
			if strings.Contains(resumeText, keyword) {
				score += 20
				break
			}
		}
	}

	for _, field := range job.EducationRequired.FieldsOfStudy {
		if strings.Contains(resumeText, strings.ToLower(field)) {
			score += 10
			break
		}
	}

	for _, cert := range job.EducationRequired.Certifications {
		if strings.Contains(resumeText, strings.ToLower(cert)) {
			score += 5
		}
	}

	return clamp(score)
}

// formattingScore penalizes signals of ATS-unfriendly resumes: unusual file
// formats, truncated extraction, missing contact details and missing
// standard section headers.
func formattingScore(resume types.ResumeRecord) float64 {
	score := baseFormattingScore

	// Unknown origin is not penalized; only an explicitly unusual format is.
	if resume.FileFormat != "" {
		if _, ok := goodFileFormats[resume.FileFormat]; !ok {
			score -= 20
		}
	}

	if resume.RawText == "" || len(resume.RawText) < 100 {
		score -= 30
	}

	if resume.ContactInfo.Email == "" {
		score -= 10
	}
	if resume.ContactInfo.Phone == "" {
		score -= 5
	}

	textLower := strings.ToLower(resume.RawText)
	for _, section := range resumeSections {
		if !strings.Contains(textLower, section) {
			score -= 5
		}
	}

	return math.Max(score, 0)
}

// Grade converts a numeric score to a letter grade.
func Grade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// Interpretation describes the candidate's chance of passing an ATS filter.
func Interpretation(score float64) string {
	switch {
	case score >= 90:
		return "Excellent match - Very high chance of passing ATS"
	case score >= 80:
		return "Good match - High chance of passing ATS"
	case score >= 70:
		return "Fair match - Moderate chance of passing ATS"
	case score >= 60:
		return "Below average match - Low chance of passing ATS"
	default:
		return "Poor match - Very low chance of passing ATS"
	}
}

func toLowerSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = struct{}{}
	}
	return set
}

func clamp(score float64) float64 {
	return math.Max(0, math.Min(score, 100))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func joinSample(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}
