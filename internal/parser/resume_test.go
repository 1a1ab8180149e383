package parser

import (
	"testing"
)

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}

func TestExtractContactInfo(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		email    string
		phone    string
		linkedin string
		github   string
	}{
		{
			name:     "all fields present",
			text:     "Jane Doe\njane.doe@example.com | (555) 123-4567\nlinkedin.com/in/janedoe | github.com/janedoe",
			email:    "jane.doe@example.com",
			phone:    "(555) 123-4567",
			linkedin: "linkedin.com/in/janedoe",
			github:   "github.com/janedoe",
		},
		{
			name:  "dashed phone",
			text:  "call 555-123-4567",
			phone: "555-123-4567",
		},
		{
			name:  "country code phone",
			text:  "+1 555 123 4567",
			phone: "+1 555 123 4567",
		},
		{
			name: "nothing found",
			text: "no contact details here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractContactInfo(tt.text)
			if got.Email != tt.email {
				t.Errorf("email = %q, want %q", got.Email, tt.email)
			}
			if got.Phone != tt.phone {
				t.Errorf("phone = %q, want %q", got.Phone, tt.phone)
			}
			if got.LinkedIn != tt.linkedin {
				t.Errorf("linkedin = %q, want %q", got.LinkedIn, tt.linkedin)
			}
			if got.GitHub != tt.github {
				t.Errorf("github = %q, want %q", got.GitHub, tt.github)
			}
		})
	}
}

func TestResumeParserSkills(t *testing.T) {
	p := NewResumeParser()

	t.Run("dictionary skills found with word boundaries", func(t *testing.T) {
		record := p.Parse("Java and Python developer", "cv.txt", ".txt")
		if !contains(record.Skills, "Java") {
			t.Errorf("skills %v missing Java", record.Skills)
		}
		if !contains(record.Skills, "Python") {
			t.Errorf("skills %v missing Python", record.Skills)
		}
	})

	t.Run("javascript does not credit java", func(t *testing.T) {
		record := p.Parse("JavaScript developer", "cv.txt", ".txt")
		if contains(record.Skills, "Java") {
			t.Errorf("skills %v should not contain Java", record.Skills)
		}
		if !contains(record.Skills, "JavaScript") {
			t.Errorf("skills %v missing JavaScript", record.Skills)
		}
	})

	t.Run("variation credits canonical skill", func(t *testing.T) {
		record := p.Parse("Shipped several K8s clusters", "cv.txt", ".txt")
		if !contains(record.Skills, "Kubernetes") {
			t.Errorf("skills %v missing Kubernetes via K8s variation", record.Skills)
		}
	})

	t.Run("hard and soft partition", func(t *testing.T) {
		record := p.Parse("Python expert with strong Leadership", "cv.txt", ".txt")
		if !contains(record.HardSkills, "Python") {
			t.Errorf("hard skills %v missing Python", record.HardSkills)
		}
		if !contains(record.SoftSkills, "Leadership") {
			t.Errorf("soft skills %v missing Leadership", record.SoftSkills)
		}
	})

	t.Run("no duplicates", func(t *testing.T) {
		record := p.Parse("Docker, docker and more Docker with Containerization", "cv.txt", ".txt")
		count := 0
		for _, s := range record.Skills {
			if s == "Docker" {
				count++
			}
		}
		if count != 1 {
			t.Errorf("Docker appears %d times in %v, want 1", count, record.Skills)
		}
	})
}

func TestExtractActionVerbs(t *testing.T) {
	got := extractActionVerbs("Led a team that developed and implemented the platform")
	want := map[string]bool{"developed": true, "implemented": true, "led": true}
	for _, verb := range got {
		if !want[verb] {
			t.Errorf("unexpected verb %q", verb)
		}
		delete(want, verb)
	}
	if len(want) != 0 {
		t.Errorf("missing verbs: %v (got %v)", want, got)
	}
}

func TestResumeRecordMetadata(t *testing.T) {
	p := NewResumeParser()
	record := p.Parse("some text", "resume.pdf", ".pdf")
	if record.FileName != "resume.pdf" || record.FileFormat != ".pdf" {
		t.Errorf("metadata = %q/%q", record.FileName, record.FileFormat)
	}
	if record.RawText != "some text" {
		t.Errorf("raw text = %q", record.RawText)
	}
}
