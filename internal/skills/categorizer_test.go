package skills

import (
	"reflect"
	"testing"
)

func TestCategorizeSkills(t *testing.T) {
	c := NewCategorizer()

	tests := []struct {
		name          string
		skills        []string
		hard          []string
		soft          []string
		uncategorized []string
	}{
		{
			name:          "dictionary matches",
			skills:        []string{"Python", "Leadership", "Blorf"},
			hard:          []string{"Python"},
			soft:          []string{"Leadership"},
			uncategorized: []string{"Blorf"},
		},
		{
			name:          "case and whitespace folded",
			skills:        []string{"  python ", "LEADERSHIP"},
			hard:          []string{"  python "},
			soft:          []string{"LEADERSHIP"},
			uncategorized: []string{},
		},
		{
			name:          "special characters in dictionary names",
			skills:        []string{"C++", "C#", "Node.js"},
			hard:          []string{"C++", "C#", "Node.js"},
			soft:          []string{},
			uncategorized: []string{},
		},
		{
			name:          "hard pattern fallback",
			skills:        []string{"embedded coding"},
			hard:          []string{"embedded coding"},
			soft:          []string{},
			uncategorized: []string{},
		},
		{
			name:          "soft pattern fallback",
			skills:        []string{"presentation skills workshop"},
			hard:          []string{},
			soft:          []string{"presentation skills workshop"},
			uncategorized: []string{},
		},
		{
			name:          "substring indicator fallback",
			skills:        []string{"domain specific language design"},
			hard:          []string{"domain specific language design"},
			soft:          []string{},
			uncategorized: []string{},
		},
		{
			name:          "empty input",
			skills:        []string{},
			hard:          []string{},
			soft:          []string{},
			uncategorized: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.CategorizeSkills(tt.skills)
			if !reflect.DeepEqual(got.HardSkills, tt.hard) {
				t.Errorf("hard skills = %v, want %v", got.HardSkills, tt.hard)
			}
			if !reflect.DeepEqual(got.SoftSkills, tt.soft) {
				t.Errorf("soft skills = %v, want %v", got.SoftSkills, tt.soft)
			}
			if !reflect.DeepEqual(got.Uncategorized, tt.uncategorized) {
				t.Errorf("uncategorized = %v, want %v", got.Uncategorized, tt.uncategorized)
			}
		})
	}
}

func TestCategorizeSkillsDeterminism(t *testing.T) {
	c := NewCategorizer()
	skills := []string{"Python", "Leadership", "Blorf", "Docker", "Teamwork"}

	first := c.CategorizeSkills(skills)
	second := c.CategorizeSkills(skills)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("categorization not deterministic: %v vs %v", first, second)
	}
}

func TestSkillInText(t *testing.T) {
	c := NewCategorizer()

	tests := []struct {
		name  string
		skill string
		text  string
		want  bool
	}{
		{"exact word match", "Java", "i use java daily", true},
		{"no substring false positive", "Java", "i use javascript daily", false},
		{"case insensitive", "python", "Expert in PYTHON", true},
		{"multi word phrase", "Machine Learning", "applied machine learning models", true},
		{"phrase broken up", "Machine Learning", "machine and learning", false},
		{"dot in skill name", "Node.js", "built services with node.js", true},
		{"absent skill", "Rust", "go and python only", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.SkillInText(tt.skill, tt.text); got != tt.want {
				t.Errorf("SkillInText(%q, %q) = %v, want %v", tt.skill, tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractFromText(t *testing.T) {
	c := NewCategorizer()

	t.Run("hard skills via dictionary scan", func(t *testing.T) {
		got := c.ExtractFromText("Experienced Python and Docker engineer")
		want := []string{"Python", "Docker"}
		if !reflect.DeepEqual(got.HardSkills, want) {
			t.Errorf("hard skills = %v, want %v", got.HardSkills, want)
		}
	})

	t.Run("soft skills only via phrase patterns", func(t *testing.T) {
		got := c.ExtractFromText("Strong communication skills and problem solving")
		if len(got.SoftSkills) == 0 {
			t.Fatal("expected soft skill phrases to be detected")
		}
		if got.SoftSkills[0] != "communication skills" {
			t.Errorf("first soft skill = %q, want %q", got.SoftSkills[0], "communication skills")
		}
	})

	t.Run("bare soft skill noun is not extracted from text", func(t *testing.T) {
		// The dictionary is not scanned for soft skills; only phrase
		// patterns apply. "Leadership" alone has no pattern match.
		got := c.ExtractFromText("Leadership of distributed teams")
		if len(got.SoftSkills) != 0 {
			t.Errorf("soft skills = %v, want none", got.SoftSkills)
		}
	})

	t.Run("duplicates removed preserving first occurrence", func(t *testing.T) {
		got := c.ExtractFromText("Python, more Python, and even more Python")
		want := []string{"Python"}
		if !reflect.DeepEqual(got.HardSkills, want) {
			t.Errorf("hard skills = %v, want %v", got.HardSkills, want)
		}
	})
}

func TestDedupeFold(t *testing.T) {
	got := DedupeFold([]string{"Python", "python", "PYTHON", "Go"})
	want := []string{"Python", "Go"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DedupeFold = %v, want %v", got, want)
	}
}

func BenchmarkExtractFromText(b *testing.B) {
	c := NewCategorizer()
	text := "Senior engineer with Python, Go, Docker, Kubernetes, strong communication skills and team leadership experience across AWS and GCP deployments."

	for b.Loop() {
		c.ExtractFromText(text)
	}
}
