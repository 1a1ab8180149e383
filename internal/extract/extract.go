// Package extract converts resume files into raw text. Formats are served
// by an explicit ordered provider registry built once at startup; there is
// no error-driven fallback between providers.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"atscheck/internal/errors"
)

// Extractor converts one file into raw text.
type Extractor interface {
	ExtractText(path string) (string, error)
}

// Registry routes files to an extractor by lowercase extension.
type Registry struct {
	extractors map[string]Extractor
}

// NewRegistry builds the default registry: plain-text formats are handled
// natively; binary document formats are registered so the error names the
// expected conversion step instead of a generic unsupported message.
func NewRegistry() *Registry {
	plain := &PlainTextExtractor{}
	convert := &ConversionRequiredExtractor{}

	return &Registry{
		extractors: map[string]Extractor{
			".txt":  plain,
			".text": plain,
			".md":   plain,
			".pdf":  convert,
			".docx": convert,
			".doc":  convert,
		},
	}
}

// ExtractText reads the file and returns its text content.
func (r *Registry) ExtractText(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	extractor, ok := r.extractors[ext]
	if !ok {
		return "", errors.NewValidationError(errors.ErrCodeUnsupportedFormat,
			fmt.Sprintf("unsupported file format: %s", ext), nil).
			WithContext("path", path)
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewIOError(errors.ErrCodeFileNotFound,
				fmt.Sprintf("resume file not found: %s", path), err)
		}
		return "", errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("cannot access file: %s", path), err)
	}

	return extractor.ExtractText(path)
}

// Supported returns the registered extensions.
func (r *Registry) Supported() []string {
	exts := make([]string, 0, len(r.extractors))
	for ext := range r.extractors {
		exts = append(exts, ext)
	}
	return exts
}

// PlainTextExtractor reads text files, decoding through a fixed encoding
// fallback chain: utf-8, then latin-1, then cp1252.
type PlainTextExtractor struct{}

var fallbackDecoders = []struct {
	name    string
	decoder *encoding.Decoder
}{
	{"latin-1", charmap.ISO8859_1.NewDecoder()},
	{"cp1252", charmap.Windows1252.NewDecoder()},
}

// ExtractText reads the file and decodes it with the first encoding in the
// chain that succeeds.
func (e *PlainTextExtractor) ExtractText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("failed to read file: %s", path), err)
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	for _, fallback := range fallbackDecoders {
		decoded, err := fallback.decoder.Bytes(data)
		if err == nil {
			return string(decoded), nil
		}
	}

	return "", errors.NewParseError(errors.ErrCodeDecodeError,
		fmt.Sprintf("no encoding in the fallback chain could decode: %s", path), nil)
}

// ConversionRequiredExtractor rejects binary document formats with guidance
// to convert them to plain text first. Scoring itself only needs text; the
// original file extension can still be asserted for the formatting score.
type ConversionRequiredExtractor struct{}

func (e *ConversionRequiredExtractor) ExtractText(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	return "", errors.NewValidationError(errors.ErrCodeUnsupportedFormat,
		fmt.Sprintf("%s files must be converted to plain text before scoring; pass the extracted text with --resume-format %s", ext, ext), nil).
		WithContext("path", path)
}
