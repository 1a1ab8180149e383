package analyzer

import (
	"regexp"
	"strings"

	"atscheck/internal/skills"
	"atscheck/internal/types"
)

var (
	requiredSkillSections = compileSections([]string{
		`required skills?:?(.*?)(?:preferred|desired|nice to have|\n\n)`,
		`must have:?(.*?)(?:preferred|desired|nice to have|\n\n)`,
		`requirements?:?(.*?)(?:preferred|desired|nice to have|\n\n)`,
		`qualifications?:?(.*?)(?:preferred|desired|nice to have|\n\n)`,
	})
	preferredSkillSections = compileSections([]string{
		`preferred skills?:?(.*?)(?:requirements?|qualifications?|\n\n)`,
		`nice to have:?(.*?)(?:requirements?|qualifications?|\n\n)`,
		`desired skills?:?(.*?)(?:requirements?|qualifications?|\n\n)`,
		`bonus:?(.*?)(?:requirements?|qualifications?|\n\n)`,
	})

	experienceYears = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:to\s*(\d+))?\s*years?\s*(?:of\s*)?(?:experience|exp)`)

	// Level inference checks entry first: a posting matching both "junior"
	// and "senior" keywords reports entry. Preserved from the original
	// behavior; flagged for product review rather than silently changed.
	experienceLevels = []struct {
		level    string
		keywords []string
	}{
		{"entry", []string{"entry level", "junior", "associate", "fresh graduate"}},
		{"mid", []string{"mid level", "intermediate", "professional"}},
		{"senior", []string{"senior", "lead", "principal", "expert"}},
		{"executive", []string{"executive", "director", "vp", "vice president", "c-level"}},
	}

	degreePatterns = []struct {
		level   string
		pattern *regexp.Regexp
	}{
		{"bachelor", regexp.MustCompile(`(?i)bachelor(?:'s)?(?:\s+(?:of|in))?\s+(?:science|arts|engineering|business|computer science)`)},
		{"master", regexp.MustCompile(`(?i)master(?:'s)?(?:\s+(?:of|in))?\s+(?:science|arts|engineering|business administration|computer science)`)},
		{"phd", regexp.MustCompile(`(?i)(?:phd|ph\.d\.|doctorate)`)},
		{"associate", regexp.MustCompile(`(?i)associate(?:'s)?\s+degree`)},
	}

	studyFields = []string{
		"computer science", "software engineering", "information technology",
		"electrical engineering", "data science", "mathematics", "physics",
		"business administration", "finance", "marketing",
	}

	certificationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:certified|certification)\s+\w+(?:\s+\w+){0,3}`),
		regexp.MustCompile(`[A-Z]{2,}(?:\+|\s+certified)`),
	}

	jobTitlePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)^([^\n]+)`),
		regexp.MustCompile(`(?i)(?:position|title|role):\s*([^\n]+)`),
		regexp.MustCompile(`(?i)job title:\s*([^\n]+)`),
	}

	employmentTypes = []struct {
		name     string
		keywords []string
	}{
		{"full-time", []string{"full-time", "full time"}},
		{"part-time", []string{"part-time", "part time"}},
		{"contract", []string{"contract", "contractor"}},
		{"internship", []string{"internship", "intern"}},
		{"temporary", []string{"temporary", "temp"}},
		{"freelance", []string{"freelance"}},
	}

	industryTerms = []struct {
		industry string
		terms    []string
	}{
		{"fintech", []string{"financial", "banking", "payments", "trading", "investment"}},
		{"healthcare", []string{"medical", "patient", "clinical", "healthcare", "hipaa"}},
		{"e-commerce", []string{"retail", "shopping", "cart", "payment", "inventory"}},
		{"saas", []string{"subscription", "multi-tenant", "cloud", "enterprise", "b2b"}},
		{"gaming", []string{"game", "unity", "unreal", "graphics", "3d"}},
		{"ai/ml", []string{"artificial intelligence", "machine learning", "neural", "model"}},
	}
)

// JobAnalyzer produces the structured view of a job posting. Stateless
// aside from the shared immutable dictionaries; safe for concurrent use.
type JobAnalyzer struct {
	categorizer *skills.Categorizer
	keywords    *KeywordExtractor
	parser      *RequirementsParser
	topKeywords int
}

// NewJobAnalyzer returns an analyzer ranking topKeywords single-word
// keywords per posting; pass 0 for the default.
func NewJobAnalyzer(topKeywords int) *JobAnalyzer {
	if topKeywords <= 0 {
		topKeywords = DefaultTopKeywords
	}
	return &JobAnalyzer{
		categorizer: skills.NewCategorizer(),
		keywords:    NewKeywordExtractor(),
		parser:      NewRequirementsParser(),
		topKeywords: topKeywords,
	}
}

// Analyze extracts all structured information from a job description.
// Re-analysis of identical text is idempotent.
func (a *JobAnalyzer) Analyze(jobDescription string) types.JobRecord {
	required := a.extractSectionSkills(jobDescription, requiredSkillSections, true)
	preferred := a.extractSectionSkills(jobDescription, preferredSkillSections, false)

	requiredCat := a.categorizer.CategorizeSkills(required)
	preferredCat := a.categorizer.CategorizeSkills(preferred)
	textSkills := a.categorizer.ExtractFromText(jobDescription)

	allHard := skills.DedupeFold(concat(requiredCat.HardSkills, preferredCat.HardSkills, textSkills.HardSkills))
	allSoft := skills.DedupeFold(concat(requiredCat.SoftSkills, preferredCat.SoftSkills, textSkills.SoftSkills))

	return types.JobRecord{
		RawText:             jobDescription,
		RequiredSkills:      required,
		PreferredSkills:     preferred,
		RequiredHardSkills:  requiredCat.HardSkills,
		RequiredSoftSkills:  requiredCat.SoftSkills,
		PreferredHardSkills: preferredCat.HardSkills,
		PreferredSoftSkills: preferredCat.SoftSkills,
		AllHardSkills:       allHard,
		AllSoftSkills:       allSoft,
		ExperienceRequired:  extractExperience(jobDescription),
		EducationRequired:   extractEducation(jobDescription),
		Keywords:            a.keywords.Extract(jobDescription, a.topKeywords),
		Requirements:        a.parser.Parse(jobDescription),
		JobTitle:            extractJobTitle(jobDescription),
		EmploymentType:      extractEmploymentType(jobDescription),
		IndustryKeywords:    extractIndustryKeywords(jobDescription),
	}
}

// extractSectionSkills scans the given section patterns, re-applies the
// categorizer to each captured span and unions the result with a whole-text
// scan when includeTextScan is set. Deduplicated case-insensitively,
// preserving first-seen order.
func (a *JobAnalyzer) extractSectionSkills(text string, sections []*regexp.Regexp, includeTextScan bool) []string {
	lower := strings.ToLower(text)

	found := []string{}
	if includeTextScan {
		textSkills := a.categorizer.ExtractFromText(text)
		found = append(found, textSkills.HardSkills...)
		found = append(found, textSkills.SoftSkills...)
	}

	for _, section := range sections {
		for _, match := range section.FindAllStringSubmatch(lower, -1) {
			sectionSkills := a.categorizer.ExtractFromText(match[1])
			found = append(found, sectionSkills.HardSkills...)
			found = append(found, sectionSkills.SoftSkills...)
		}
	}

	return skills.DedupeFold(found)
}

func extractExperience(text string) types.ExperienceRequirement {
	exp := types.ExperienceRequirement{}

	if m := experienceYears.FindStringSubmatch(text); m != nil {
		if m[2] != "" {
			exp.Years = m[1] + "-" + m[2]
		} else {
			exp.Years = m[1]
		}
	}

	lower := strings.ToLower(text)
	for _, level := range experienceLevels {
		for _, keyword := range level.keywords {
			if strings.Contains(lower, keyword) {
				exp.Level = level.level
				return exp
			}
		}
	}

	return exp
}

func extractEducation(text string) types.EducationRequirement {
	edu := types.EducationRequirement{
		FieldsOfStudy:  []string{},
		Certifications: []string{},
	}

	lower := strings.ToLower(text)
	for _, degree := range degreePatterns {
		if degree.pattern.MatchString(lower) {
			edu.DegreeLevel = degree.level
			break
		}
	}

	for _, field := range studyFields {
		if strings.Contains(lower, field) {
			edu.FieldsOfStudy = append(edu.FieldsOfStudy, field)
		}
	}

	for _, pattern := range certificationPatterns {
		edu.Certifications = append(edu.Certifications, pattern.FindAllString(text, -1)...)
	}

	return edu
}

// extractJobTitle tries, in order, the first line, a position/title/role
// header, and an explicit job title header, accepting the first capture
// under 100 characters.
func extractJobTitle(text string) string {
	for _, pattern := range jobTitlePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			title := strings.TrimSpace(m[1])
			if len(title) < 100 {
				return title
			}
		}
	}
	return types.UnknownPosition
}

func extractEmploymentType(text string) string {
	lower := strings.ToLower(text)
	for _, et := range employmentTypes {
		for _, keyword := range et.keywords {
			if strings.Contains(lower, keyword) {
				return et.name
			}
		}
	}
	return "not specified"
}

func extractIndustryKeywords(text string) []string {
	lower := strings.ToLower(text)

	industries := []string{}
	for _, it := range industryTerms {
		for _, term := range it.terms {
			if strings.Contains(lower, term) {
				industries = append(industries, it.industry)
				break
			}
		}
	}
	return industries
}

func concat(lists ...[]string) []string {
	out := []string{}
	for _, list := range lists {
		out = append(out, list...)
	}
	return out
}
