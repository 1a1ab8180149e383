package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// ValidateInputFile checks that a path names an existing, readable file.
func ValidateInputFile(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	info, err := os.Stat(filename)
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("file does not exist: %s", filename)
	case err != nil:
		return fmt.Errorf("cannot access file %s: %w", filename, err)
	case info.IsDir():
		return fmt.Errorf("path is a directory, not a file: %s", filename)
	}

	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("cannot read file %s: %w", filename, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close file %s: %w", filename, err)
	}
	return nil
}

// ValidateOutputFile checks that an output path is writable, creating
// missing parent directories. An empty path means stdout and is always
// valid.
func ValidateOutputFile(filename string) error {
	if filename == "" {
		return nil
	}

	dir := filepath.Dir(filename)
	if dir == "." {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("cannot create directory %s: %w", dir, err)
		}
	}
	return nil
}
