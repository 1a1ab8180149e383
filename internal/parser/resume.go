// Package parser builds the structured ResumeRecord view of a candidate
// resume from its raw extracted text.
package parser

import (
	"regexp"
	"strings"

	"atscheck/internal/skills"
	"atscheck/internal/types"
)

var (
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	phonePattern    = regexp.MustCompile(`(\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	githubPattern   = regexp.MustCompile(`(?i)github\.com/[\w-]+`)

	// Abbreviations and alternate spellings that credit the canonical
	// dictionary skill when found in resume text.
	skillVariations = []struct {
		canonical  string
		variations []string
	}{
		{"JavaScript", []string{"JS", "ECMAScript"}},
		{"TypeScript", []string{"TS"}},
		{"React", []string{"ReactJS", "React.js"}},
		{"Angular", []string{"AngularJS"}},
		{"Node.js", []string{"NodeJS", "Node"}},
		{"HTML", []string{"HTML5"}},
		{"CSS", []string{"CSS3"}},
		{"AWS", []string{"Amazon Web Services"}},
		{"GCP", []string{"Google Cloud Platform", "Google Cloud"}},
		{"Machine Learning", []string{"ML"}},
		{"Artificial Intelligence", []string{"AI"}},
		{"REST API", []string{"RESTful API", "REST APIs"}},
		{"GraphQL", []string{"Graph QL"}},
		{"Docker", []string{"Containerization"}},
		{"Kubernetes", []string{"K8s"}},
		{"CI/CD", []string{"Continuous Integration", "Continuous Deployment"}},
	}

	actionVerbs = []string{
		"managed", "developed", "created", "implemented", "designed",
		"analyzed", "improved", "achieved", "led", "coordinated",
	}
)

// ResumeParser extracts structured information from resume text. Stateless
// aside from the shared immutable dictionaries; safe for concurrent use.
type ResumeParser struct {
	categorizer *skills.Categorizer
}

// NewResumeParser returns a resume parser.
func NewResumeParser() *ResumeParser {
	return &ResumeParser{categorizer: skills.NewCategorizer()}
}

// Parse builds a ResumeRecord from raw text. fileName and fileFormat
// describe the originating file; fileFormat feeds the formatting score only.
func (p *ResumeParser) Parse(text, fileName, fileFormat string) types.ResumeRecord {
	allSkills := p.extractSkills(text)
	categorized := p.categorizer.CategorizeSkills(allSkills)
	textSkills := p.categorizer.ExtractFromText(text)

	return types.ResumeRecord{
		RawText:     text,
		ContactInfo: extractContactInfo(text),
		Skills:      allSkills,
		HardSkills:  skills.DedupeFold(append(categorized.HardSkills, textSkills.HardSkills...)),
		SoftSkills:  skills.DedupeFold(append(categorized.SoftSkills, textSkills.SoftSkills...)),
		Keywords:    extractActionVerbs(text),
		FileName:    fileName,
		FileFormat:  fileFormat,
	}
}

func extractContactInfo(text string) types.ContactInfo {
	return types.ContactInfo{
		Email:    emailPattern.FindString(text),
		Phone:    phonePattern.FindString(text),
		LinkedIn: linkedinPattern.FindString(text),
		GitHub:   githubPattern.FindString(text),
	}
}

// extractSkills scans the combined hard+soft dictionary against the text
// with word-boundary matching, then credits canonical skills whose
// variations appear. Deduplicated preserving first-seen order.
func (p *ResumeParser) extractSkills(text string) []string {
	lower := strings.ToLower(text)

	found := []string{}
	for _, skill := range p.categorizer.HardSkills() {
		if p.categorizer.SkillInText(skill, lower) {
			found = append(found, skill)
		}
	}
	for _, skill := range p.categorizer.SoftSkills() {
		if p.categorizer.SkillInText(skill, lower) {
			found = append(found, skill)
		}
	}

	for _, sv := range skillVariations {
		for _, variation := range sv.variations {
			if p.categorizer.SkillInText(variation, lower) {
				found = append(found, sv.canonical)
				break
			}
		}
	}

	return dedupe(found)
}

func extractActionVerbs(text string) []string {
	lower := strings.ToLower(text)

	verbs := []string{}
	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			verbs = append(verbs, verb)
		}
	}
	return verbs
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := []string{}
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
