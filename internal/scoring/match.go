package scoring

import (
	"strings"

	"atscheck/internal/types"
)

// BasicMatchKeywords is the deterministic lexical fallback for keyword
// matching: exact case-insensitive matches first, then substring containment
// in either direction. Unlike the LLM path, substring matches count at full
// weight in the match rate.
func BasicMatchKeywords(resumeKeywords, jobKeywords []string) *types.KeywordMatchResult {
	result := &types.KeywordMatchResult{
		ExactMatches:      []string{},
		RelatedMatches:    []types.RelatedMatch{},
		UnmatchedCritical: []string{},
	}

	resumeLower := make([]string, len(resumeKeywords))
	for i, k := range resumeKeywords {
		resumeLower[i] = strings.ToLower(k)
	}

	for _, jobKeyword := range jobKeywords {
		jobLower := strings.ToLower(jobKeyword)

		if indexOf(resumeLower, jobLower) >= 0 {
			result.ExactMatches = append(result.ExactMatches, jobKeyword)
			continue
		}

		found := false
		for i, resumeKeyword := range resumeLower {
			if strings.Contains(resumeKeyword, jobLower) || strings.Contains(jobLower, resumeKeyword) {
				result.RelatedMatches = append(result.RelatedMatches, types.RelatedMatch{
					JobKeyword:    jobKeyword,
					ResumeKeyword: resumeKeywords[i],
					Relationship:  "substring match",
				})
				found = true
				break
			}
		}

		if !found {
			result.UnmatchedCritical = append(result.UnmatchedCritical, jobKeyword)
		}
	}

	total := len(jobKeywords)
	if total == 0 {
		total = 1
	}
	matched := len(result.ExactMatches) + len(result.RelatedMatches)
	result.MatchRate = float64(matched) / float64(total) * 100

	return result
}

func indexOf(items []string, want string) int {
	for i, item := range items {
		if item == want {
			return i
		}
	}
	return -1
}
