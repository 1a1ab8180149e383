// Package skills classifies skill strings and free text into hard
// (technical) and soft (behavioral) skills using curated dictionaries plus
// regex fallback rules.
package skills

import (
	"regexp"
	"strings"
)

// Category is the classification of a single skill.
type Category string

const (
	CategoryHard    Category = "hard"
	CategorySoft    Category = "soft"
	CategoryUnknown Category = "unknown"
)

// Categorized is the partition of an input skill list.
type Categorized struct {
	HardSkills    []string
	SoftSkills    []string
	Uncategorized []string
}

// Extracted holds skills detected directly in free text.
type Extracted struct {
	HardSkills []string
	SoftSkills []string
}

// Shared compiled state, built once at package init and read-only afterwards.
var (
	hardSkillSet     map[string]struct{}
	softSkillSet     map[string]struct{}
	hardPatterns     []*regexp.Regexp
	softPatterns     []*regexp.Regexp
	dictSkillMatches map[string]*regexp.Regexp
)

func init() {
	hardSkillSet = make(map[string]struct{}, len(hardSkills))
	for _, s := range hardSkills {
		hardSkillSet[strings.ToLower(s)] = struct{}{}
	}
	softSkillSet = make(map[string]struct{}, len(softSkills))
	for _, s := range softSkills {
		softSkillSet[strings.ToLower(s)] = struct{}{}
	}
	hardPatterns = compileAll(hardSkillPatterns)
	softPatterns = compileAll(softSkillPatterns)

	dictSkillMatches = make(map[string]*regexp.Regexp, len(hardSkills)+len(softSkills))
	for _, s := range hardSkills {
		dictSkillMatches[strings.ToLower(s)] = wordBoundaryPattern(s)
	}
	for _, s := range softSkills {
		dictSkillMatches[strings.ToLower(s)] = wordBoundaryPattern(s)
	}
}

func compileAll(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(`(?i)`+p))
	}
	return compiled
}

func wordBoundaryPattern(skill string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(strings.ToLower(skill)) + `\b`)
}

// Categorizer classifies skills against the shared dictionaries. Instances
// hold no mutable state and are safe for concurrent use.
type Categorizer struct{}

// NewCategorizer returns a categorizer backed by the process-wide dictionaries.
func NewCategorizer() *Categorizer {
	return &Categorizer{}
}

// HardSkills returns the full hard-skill dictionary.
func (c *Categorizer) HardSkills() []string {
	return hardSkills
}

// SoftSkills returns the full soft-skill dictionary.
func (c *Categorizer) SoftSkills() []string {
	return softSkills
}

// CategorizeSkills partitions the given skills into hard, soft and
// uncategorized, preserving input order. Each skill lands in exactly one
// bucket; the first matching rule wins.
func (c *Categorizer) CategorizeSkills(skillList []string) Categorized {
	result := Categorized{
		HardSkills:    []string{},
		SoftSkills:    []string{},
		Uncategorized: []string{},
	}

	for _, skill := range skillList {
		switch c.Classify(skill) {
		case CategoryHard:
			result.HardSkills = append(result.HardSkills, skill)
		case CategorySoft:
			result.SoftSkills = append(result.SoftSkills, skill)
		default:
			result.Uncategorized = append(result.Uncategorized, skill)
		}
	}

	return result
}

// Classify maps a single skill string to a category. Rules are checked in
// order: hard dictionary, soft dictionary, hard patterns, soft patterns,
// substring indicators, unknown.
func (c *Categorizer) Classify(skill string) Category {
	normalized := strings.TrimSpace(strings.ToLower(skill))

	if _, ok := hardSkillSet[normalized]; ok {
		return CategoryHard
	}
	if _, ok := softSkillSet[normalized]; ok {
		return CategorySoft
	}

	for _, p := range hardPatterns {
		if p.MatchString(normalized) {
			return CategoryHard
		}
	}
	for _, p := range softPatterns {
		if p.MatchString(normalized) {
			return CategorySoft
		}
	}

	for _, indicator := range hardIndicators {
		if strings.Contains(normalized, indicator) {
			return CategoryHard
		}
	}
	for _, indicator := range softIndicators {
		if strings.Contains(normalized, indicator) {
			return CategorySoft
		}
	}

	return CategoryUnknown
}

// ExtractFromText detects skills directly in free text. Hard skills are
// found by scanning the whole dictionary with word-boundary matching; soft
// skills are found only via the soft-skill phrase patterns. The asymmetry is
// intentional: hard skills are discrete nouns, soft skills are context
// phrases. Results are deduplicated preserving first-seen order.
func (c *Categorizer) ExtractFromText(text string) Extracted {
	lower := strings.ToLower(text)

	foundHard := []string{}
	for _, skill := range hardSkills {
		if dictSkillMatches[strings.ToLower(skill)].MatchString(lower) {
			foundHard = append(foundHard, skill)
		}
	}

	foundSoft := []string{}
	for _, p := range softPatterns {
		for _, match := range p.FindAllString(lower, -1) {
			foundSoft = append(foundSoft, strings.TrimSpace(match))
		}
	}

	return Extracted{
		HardSkills: dedupe(foundHard),
		SoftSkills: dedupe(foundSoft),
	}
}

// SkillInText reports whether the skill occurs in the text as a whole word
// or phrase, case-insensitive. Special regex characters in the skill name
// are escaped before matching.
func (c *Categorizer) SkillInText(skill, text string) bool {
	if p, ok := dictSkillMatches[strings.ToLower(skill)]; ok {
		return p.MatchString(text)
	}
	p, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(strings.ToLower(skill)) + `\b`)
	if err != nil {
		return false
	}
	return p.MatchString(text)
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

// DedupeFold removes duplicates case-insensitively, preserving first-seen
// order and original casing.
func DedupeFold(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := []string{}
	for _, item := range items {
		key := strings.ToLower(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}
