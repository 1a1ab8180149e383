// Package analyzer turns raw job description text into the structured
// JobRecord view: frequency-ranked keywords, section-scoped requirements,
// skills, experience, education, title and employment type.
package analyzer

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"atscheck/internal/types"
)

// DefaultTopKeywords is the number of ranked single-word keywords returned
// when the caller does not override it.
const DefaultTopKeywords = 20

var (
	tokenCleaner = regexp.MustCompile(`[^\w\s+#]`)

	phrasePatterns = compilePatterns([]string{
		`\b(?:machine learning|deep learning|artificial intelligence)\b`,
		`\b(?:data science|data analysis|data engineering)\b`,
		`\b(?:software development|software engineering)\b`,
		`\b(?:project management|product management)\b`,
		`\b(?:full stack|front end|back end|backend|frontend)\b`,
		`\b(?:version control|continuous integration|continuous deployment)\b`,
		`\b(?:test driven|behavior driven|domain driven)\b`,
		`\b(?:object oriented|functional programming)\b`,
		`\b(?:cloud computing|cloud native|cloud architecture)\b`,
		`\b(?:best practices|design patterns|clean code)\b`,
	})

	stopWords = toSet([]string{
		"the", "be", "to", "of", "and", "a", "in", "that", "have",
		"i", "it", "for", "not", "on", "with", "he", "as", "you",
		"do", "at", "this", "but", "his", "by", "from", "they",
		"we", "say", "her", "she", "or", "an", "will", "my", "one",
		"all", "would", "there", "their", "what", "so", "up", "out",
		"if", "about", "who", "get", "which", "go", "me", "when",
		"make", "can", "like", "time", "no", "just", "him", "know",
		"take", "people", "into", "year", "your", "good", "some",
		"could", "them", "see", "other", "than", "then", "now",
		"look", "only", "come", "its", "over", "think", "also",
		"back", "after", "use", "two", "how", "our", "work", "first",
		"well", "way", "even", "new", "want", "because", "any",
		"these", "give", "day", "most", "us", "is", "are", "was",
		"were", "been", "has", "had", "may", "must", "shall", "should",
	})
)

func compilePatterns(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(`(?i)`+p))
	}
	return compiled
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// KeywordExtractor produces a frequency-ranked keyword signal from free
// text. Stateless; safe for concurrent use.
type KeywordExtractor struct{}

// NewKeywordExtractor returns a keyword extractor.
func NewKeywordExtractor() *KeywordExtractor {
	return &KeywordExtractor{}
}

// Extract returns the topN most frequent non-stop-word tokens plus curated
// technical phrases found in the text. Tokens are counted case-sensitively;
// ties rank by first occurrence.
func (e *KeywordExtractor) Extract(text string, topN int) types.KeywordInfo {
	if topN <= 0 {
		topN = DefaultTopKeywords
	}

	words := tokenize(text)

	counts := make(map[string]int)
	order := []string{}
	for _, w := range words {
		if _, stop := stopWords[strings.ToLower(w)]; stop {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > topN {
		order = order[:topN]
	}

	ranked := make([]types.KeywordCount, 0, len(order))
	for _, w := range order {
		ranked = append(ranked, types.KeywordCount{Keyword: w, Frequency: counts[w]})
	}

	return types.KeywordInfo{
		SingleWords: ranked,
		Phrases:     extractPhrases(text),
	}
}

// tokenize strips everything except alphanumerics, '+', '#' and whitespace,
// then drops tokens of length <=2 or purely numeric.
func tokenize(text string) []string {
	cleaned := tokenCleaner.ReplaceAllString(text, " ")

	words := []string{}
	for _, w := range strings.Fields(cleaned) {
		if len(w) <= 2 || isAllDigits(w) {
			continue
		}
		words = append(words, w)
	}
	return words
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

// extractPhrases scans the curated multi-word phrase patterns against the
// whole text, deduplicating while preserving first occurrence.
func extractPhrases(text string) []string {
	lower := strings.ToLower(text)

	seen := make(map[string]struct{})
	phrases := []string{}
	for _, p := range phrasePatterns {
		for _, match := range p.FindAllString(lower, -1) {
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}
			phrases = append(phrases, match)
		}
	}
	return phrases
}
