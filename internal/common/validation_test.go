package common

import (
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	formats := []string{"json", "text", "markdown"}

	t.Run("supported format passes", func(t *testing.T) {
		for _, format := range formats {
			if err := ValidateOutputFormat(format, formats); err != nil {
				t.Errorf("expected %q to validate, got: %v", format, err)
			}
		}
	})

	t.Run("unsupported format fails", func(t *testing.T) {
		err := ValidateOutputFormat("yaml", formats)
		if err == nil {
			t.Fatal("expected an error for unsupported format")
		}
		if !strings.Contains(err.Error(), "yaml") {
			t.Errorf("expected error to name the format, got: %v", err)
		}
		if !strings.Contains(err.Error(), "json, text, markdown") {
			t.Errorf("expected error to list supported formats, got: %v", err)
		}
	})

	t.Run("empty list allows anything", func(t *testing.T) {
		if err := ValidateOutputFormat("anything", nil); err != nil {
			t.Errorf("expected no error with empty format list, got: %v", err)
		}
	})
}
