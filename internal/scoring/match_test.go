package scoring

import (
	"reflect"
	"testing"
)

func TestBasicMatchKeywords(t *testing.T) {
	tests := []struct {
		name      string
		resume    []string
		job       []string
		exact     []string
		related   int
		unmatched []string
		matchRate float64
	}{
		{
			name:      "exact matches case-insensitive",
			resume:    []string{"Python", "docker"},
			job:       []string{"python", "Docker"},
			exact:     []string{"python", "Docker"},
			unmatched: []string{},
			matchRate: 100,
		},
		{
			name:      "substring counts as related",
			resume:    []string{"javascript"},
			job:       []string{"java"},
			exact:     []string{},
			related:   1,
			unmatched: []string{},
			matchRate: 100,
		},
		{
			name:      "unmatched keywords reported",
			resume:    []string{"golang"},
			job:       []string{"golang", "erlang", "cobol"},
			exact:     []string{"golang"},
			unmatched: []string{"erlang", "cobol"},
			matchRate: 100.0 / 3,
		},
		{
			name:      "empty job keywords",
			resume:    []string{"python"},
			job:       []string{},
			exact:     []string{},
			unmatched: []string{},
			matchRate: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BasicMatchKeywords(tt.resume, tt.job)

			if !reflect.DeepEqual(got.ExactMatches, tt.exact) {
				t.Errorf("exact = %v, want %v", got.ExactMatches, tt.exact)
			}
			if len(got.RelatedMatches) != tt.related {
				t.Errorf("related = %d, want %d", len(got.RelatedMatches), tt.related)
			}
			if !reflect.DeepEqual(got.UnmatchedCritical, tt.unmatched) {
				t.Errorf("unmatched = %v, want %v", got.UnmatchedCritical, tt.unmatched)
			}
			if diff := got.MatchRate - tt.matchRate; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("match rate = %v, want %v", got.MatchRate, tt.matchRate)
			}
		})
	}
}
