package common

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"atscheck/internal/errors"
	"atscheck/internal/extract"
	"atscheck/internal/utils"
)

// FileProcessor handles common file operations
type FileProcessor struct {
	logger    *errors.Logger
	extractor *extract.Registry
}

// NewFileProcessor creates a new file processor instance
func NewFileProcessor(logger *errors.Logger) *FileProcessor {
	return &FileProcessor{
		logger:    logger,
		extractor: extract.NewRegistry(),
	}
}

// ReadFile reads content from a file with proper error handling
func (fp *FileProcessor) ReadFile(filename string) (string, error) {
	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewIOError(errors.ErrCodeFileNotFound,
				fmt.Sprintf("File not found: %s", filename), err)
		}
		return "", errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("Cannot read file: %s", filename), err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			// Log the error but don't override the main operation result
			if fp.logger != nil {
				fp.logger.Warn("Failed to close file", "filename", filename, "error", err)
			}
		}
	}()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("Failed to read file content: %s", filename), err)
	}

	return string(content), nil
}

// ReadResumeFile validates a resume file and extracts its text through the
// format registry, applying the encoding fallback chain for text formats.
func (fp *FileProcessor) ReadResumeFile(filename string) (string, error) {
	if err := utils.ValidateInputFile(filename); err != nil {
		return "", errors.NewValidationError("INVALID_INPUT_FILE",
			fmt.Sprintf("Invalid file %s", filename), err)
	}
	return fp.extractor.ExtractText(filename)
}

// ResolveJobInput returns the job description text for a value that may be
// either a file path or literal text. The file interpretation wins when a
// regular file exists at that path.
func (fp *FileProcessor) ResolveJobInput(value string) (string, error) {
	if value == "" {
		return "", errors.NewValidationError("INVALID_INPUT",
			"Job description cannot be empty", nil)
	}

	if info, err := os.Stat(value); err == nil && !info.IsDir() {
		content, err := fp.ReadFile(value)
		if err != nil {
			return "", err
		}
		return content, nil
	}

	return value, nil
}

// ResumeFileFormat returns the lowercase extension of the resume file, used
// by the formatting score.
func (fp *FileProcessor) ResumeFileFormat(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// WriteFile writes content to a file with directory creation
func (fp *FileProcessor) WriteFile(filename, content string) error {
	dir := filepath.Dir(filename)
	if dir != "." {
		err := os.MkdirAll(dir, 0750)
		if err != nil {
			return errors.NewIOError("DIRECTORY_CREATE_FAILED",
				fmt.Sprintf("Cannot create directory: %s", dir), err)
		}
	}

	err := os.WriteFile(filename, []byte(content), 0600)
	if err != nil {
		return errors.NewIOError("FILE_WRITE_FAILED",
			fmt.Sprintf("Cannot write file: %s", filename), err)
	}

	return nil
}

// ValidateOutputFile validates output file path
func (fp *FileProcessor) ValidateOutputFile(filename string) error {
	if filename == "" {
		return nil // stdout is valid
	}

	if err := utils.ValidateOutputFile(filename); err != nil {
		return errors.NewValidationError("INVALID_OUTPUT_FILE",
			fmt.Sprintf("Invalid output file: %s", filename), err)
	}

	return nil
}
