package common

import (
	"fmt"
	"slices"
	"strings"
)

// ValidateOutputFormat checks a format name against the configured list.
// An empty list means no restriction.
func ValidateOutputFormat(format string, supportedFormats []string) error {
	if len(supportedFormats) == 0 || slices.Contains(supportedFormats, format) {
		return nil
	}
	return fmt.Errorf("unsupported output format %q (supported: %s)",
		format, strings.Join(supportedFormats, ", "))
}

// GetSupportedFormats returns the configured format list, used for shell
// completion of the --format flag.
func GetSupportedFormats(supportedFormats []string) []string {
	return supportedFormats
}
