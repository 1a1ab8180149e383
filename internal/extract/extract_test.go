package extract

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "atscheck/internal/errors"
)

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func TestRegistryExtractText(t *testing.T) {
	r := NewRegistry()

	t.Run("utf-8 text file", func(t *testing.T) {
		path := writeTempFile(t, "resume.txt", []byte("Python developer résumé"))
		got, err := r.ExtractText(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "Python developer résumé" {
			t.Errorf("text = %q", got)
		}
	})

	t.Run("latin-1 fallback", func(t *testing.T) {
		// 0xE9 is 'é' in latin-1 and invalid as a standalone UTF-8 byte.
		path := writeTempFile(t, "resume.txt", []byte{'r', 0xE9, 's', 'u', 'm', 0xE9})
		got, err := r.ExtractText(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "résumé" {
			t.Errorf("text = %q, want résumé", got)
		}
	})

	t.Run("markdown extension accepted", func(t *testing.T) {
		path := writeTempFile(t, "resume.md", []byte("# Jane Doe"))
		if _, err := r.ExtractText(path); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeTempFile(t, "resume.xyz", []byte("data"))
		_, err := r.ExtractText(path)
		assertErrorCode(t, err, apperrors.ErrCodeUnsupportedFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := r.ExtractText(filepath.Join(t.TempDir(), "absent.txt"))
		assertErrorCode(t, err, apperrors.ErrCodeFileNotFound)
	})

	t.Run("binary formats need conversion", func(t *testing.T) {
		path := writeTempFile(t, "resume.pdf", []byte("%PDF-1.4"))
		_, err := r.ExtractText(path)
		assertErrorCode(t, err, apperrors.ErrCodeUnsupportedFormat)
	})
}

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}
	if appErr.Code != code {
		t.Errorf("error code = %q, want %q", appErr.Code, code)
	}
}
