package analyzer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"atscheck/internal/types"
)

// Section header patterns. Each captures the block following a header up to
// the next blank line or competing header.
var (
	mustHaveSections = compileSections([]string{
		`(?:required|must have|essential|mandatory)(?:\s+(?:skills?|qualifications?|requirements?))?\s*:?\s*(.*?)(?:\n\n|\z)`,
		`what you['’]ll need\s*:?\s*(.*?)(?:\n\n|\z)`,
		`minimum requirements?\s*:?\s*(.*?)(?:\n\n|\z)`,
	})
	niceToHaveSections = compileSections([]string{
		`(?:nice to have|preferred|desired|bonus|plus)(?:\s+(?:skills?|qualifications?))?\s*:?\s*(.*?)(?:\n\n|\z)`,
		`what would be great\s*:?\s*(.*?)(?:\n\n|\z)`,
		`additional qualifications?\s*:?\s*(.*?)(?:\n\n|\z)`,
	})
	responsibilitySections = compileSections([]string{
		`(?:responsibilities|duties|what you['’]ll do|role|tasks?)\s*:?\s*(.*?)(?:\n\n|requirements?|qualifications?|\z)`,
		`you will\s*:?\s*(.*?)(?:\n\n|requirements?|qualifications?|\z)`,
		`key responsibilities\s*:?\s*(.*?)(?:\n\n|\z)`,
	})
	benefitSections = compileSections([]string{
		`(?:benefits?|perks?|what we offer|compensation)\s*:?\s*(.*?)(?:\n\n|requirements?|qualifications?|\z)`,
		`why join us\??\s*:?\s*(.*?)(?:\n\n|\z)`,
	})
	qualificationSections = compileSections([]string{
		`qualifications?\s*:?\s*(.*?)(?:\n\n|responsibilities|requirements?|\z)`,
		`ideal candidate\s*:?\s*(.*?)(?:\n\n|\z)`,
		`we['’]re looking for\s*:?\s*(.*?)(?:\n\n|\z)`,
	})

	// Item delimiters tried in priority order: bullets, numbered lists,
	// lettered lists, double newlines.
	itemDelimiters = []*regexp.Regexp{
		regexp.MustCompile(`\n\s*[-•·*]\s*`),
		regexp.MustCompile(`\n\s*\d+[.)]\s*`),
		regexp.MustCompile(`\n\s*[a-z][.)]\s*`),
		regexp.MustCompile(`\n\n`),
	}
	sentenceSplit = regexp.MustCompile(`[.!?]\s+`)

	noisePrefixes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^and\s+`),
		regexp.MustCompile(`(?i)^or\s+`),
		regexp.MustCompile(`(?i)^[,;]\s*`),
	}
)

func compileSections(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(`(?is)`+p))
	}
	return compiled
}

// RequirementsParser pulls categorized requirement lists out of a job
// description by locating section headers and splitting the captured blocks
// into items.
type RequirementsParser struct{}

// NewRequirementsParser returns a requirements parser.
func NewRequirementsParser() *RequirementsParser {
	return &RequirementsParser{}
}

// Parse extracts all requirement categories from the text.
func (p *RequirementsParser) Parse(text string) types.Requirements {
	return types.Requirements{
		MustHave:         parseSections(text, mustHaveSections),
		NiceToHave:       parseSections(text, niceToHaveSections),
		Responsibilities: parseSections(text, responsibilitySections),
		Benefits:         parseSections(text, benefitSections),
		Qualifications:   parseSections(text, qualificationSections),
	}
}

func parseSections(text string, sections []*regexp.Regexp) []string {
	lower := strings.ToLower(text)

	items := []string{}
	for _, section := range sections {
		for _, match := range section.FindAllStringSubmatch(lower, -1) {
			items = append(items, splitItems(match[1])...)
		}
	}
	return cleanItems(items)
}

// splitItems breaks a section block into individual items using the first
// delimiter pattern that produces a split; falls back to sentence splitting.
func splitItems(block string) []string {
	for _, delim := range itemDelimiters {
		parts := delim.Split(block, -1)
		if len(parts) > 1 {
			return parts
		}
	}
	return sentenceSplit.Split(block, -1)
}

// cleanItems trims, drops items under 5 or over 500 characters, strips
// leading conjunction noise, capitalizes the first letter and removes
// case-insensitive duplicates preserving order.
func cleanItems(items []string) []string {
	cleaned := []string{}
	for _, item := range items {
		item = strings.TrimSpace(item)
		if len(item) < 5 || len(item) > 500 {
			continue
		}

		for _, noise := range noisePrefixes {
			item = noise.ReplaceAllString(item, "")
		}

		if item == "" {
			continue
		}
		cleaned = append(cleaned, capitalize(item))
	}

	seen := make(map[string]struct{}, len(cleaned))
	unique := []string{}
	for _, item := range cleaned {
		key := strings.ToLower(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, item)
	}
	return unique
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
