package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveJobInput(t *testing.T) {
	fp := NewFileProcessor(nil)

	tmpDir := t.TempDir()
	jobFile := filepath.Join(tmpDir, "job.txt")
	if err := os.WriteFile(jobFile, []byte("Senior Go Developer\n5+ years experience"), 0600); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	t.Run("file path wins over literal", func(t *testing.T) {
		content, err := fp.ResolveJobInput(jobFile)
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if !strings.Contains(content, "Senior Go Developer") {
			t.Errorf("Expected file content, got: %q", content)
		}
	})

	t.Run("literal text passes through", func(t *testing.T) {
		literal := "Looking for a Python developer with Django experience"
		content, err := fp.ResolveJobInput(literal)
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if content != literal {
			t.Errorf("Expected literal text back, got: %q", content)
		}
	})

	t.Run("directory path is treated as literal", func(t *testing.T) {
		content, err := fp.ResolveJobInput(tmpDir)
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if content != tmpDir {
			t.Errorf("Expected directory path as literal, got: %q", content)
		}
	})

	t.Run("empty input errors", func(t *testing.T) {
		if _, err := fp.ResolveJobInput(""); err == nil {
			t.Error("Expected error for empty input")
		}
	})
}

func TestReadResumeFile(t *testing.T) {
	fp := NewFileProcessor(nil)

	tmpDir := t.TempDir()
	resumeFile := filepath.Join(tmpDir, "resume.txt")
	if err := os.WriteFile(resumeFile, []byte("John Doe\njohn@example.com\nExperience: Go, Python"), 0600); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	t.Run("reads text resume", func(t *testing.T) {
		content, err := fp.ReadResumeFile(resumeFile)
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if !strings.Contains(content, "john@example.com") {
			t.Errorf("Expected resume content, got: %q", content)
		}
	})

	t.Run("missing file errors", func(t *testing.T) {
		if _, err := fp.ReadResumeFile(filepath.Join(tmpDir, "missing.txt")); err == nil {
			t.Error("Expected error for missing file")
		}
	})

	t.Run("unsupported extension errors", func(t *testing.T) {
		badFile := filepath.Join(tmpDir, "resume.xyz")
		if err := os.WriteFile(badFile, []byte("content"), 0600); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
		if _, err := fp.ReadResumeFile(badFile); err == nil {
			t.Error("Expected error for unsupported extension")
		}
	})
}

func TestResumeFileFormat(t *testing.T) {
	fp := NewFileProcessor(nil)

	tests := []struct {
		filename string
		expected string
	}{
		{"resume.PDF", ".pdf"},
		{"resume.docx", ".docx"},
		{"resume.txt", ".txt"},
		{"resume", ""},
	}

	for _, tt := range tests {
		if got := fp.ResumeFileFormat(tt.filename); got != tt.expected {
			t.Errorf("ResumeFileFormat(%q) = %q, want %q", tt.filename, got, tt.expected)
		}
	}
}
