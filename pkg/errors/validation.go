package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateDimension validates a width or height value supplied to layout
// or rendering code. It rejects NaN, infinities, and negative values.
//
// The name parameter identifies the offending field in the error message
// (e.g., "width", "height", "spacing").
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) {
		return New(ErrCodeInvalidSize, "%s is NaN", name)
	}
	if math.IsInf(v, 0) {
		return New(ErrCodeInvalidSize, "%s is infinite", name)
	}
	if v < 0 {
		return New(ErrCodeInvalidSize, "%s is negative: %v", name, v)
	}
	return nil
}

// ValidateDocumentPath validates a manuscript file path for safety.
// It prevents path traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidateDocumentPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "document path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "document path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || (unicode.IsControl(r) && r != '\t') {
			return New(ErrCodeInvalidPath, "document path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "document path cannot contain path traversal sequences (..)")
	}

	return nil
}

// ValidateFormat validates an output format name against the supported set.
func ValidateFormat(format string, supported []string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	for _, s := range supported {
		if strings.EqualFold(format, s) {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (supported: %s)",
		format, strings.Join(supported, ", "))
}

// ValidateThemeName validates a theme name.
// Theme names are simple lowercase identifiers.
func ValidateThemeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidTheme, "theme name cannot be empty")
	}
	for _, r := range name {
		if !unicode.IsLower(r) && !unicode.IsDigit(r) && r != '-' {
			return New(ErrCodeInvalidTheme, "invalid theme name %q (lowercase letters, digits, and hyphens only)", name)
		}
	}
	return nil
}
