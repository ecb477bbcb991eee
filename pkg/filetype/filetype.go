// Package filetype classifies files before encoding checks run.
// It uses go-enry to recognize binary content, vendored paths, and
// the programming language of a file, so the runner can skip files
// that are not hand-written source text.
package filetype

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// LanguageUnknown is returned when no language can be determined.
const LanguageUnknown = "unknown"

// sniffLen is the number of leading bytes inspected for binary detection.
const sniffLen = 8192

// IsBinary reports whether content looks like binary data rather than text.
// Only the leading bytes are inspected.
func IsBinary(content []byte) bool {
	if len(content) > sniffLen {
		content = content[:sniffLen]
	}
	return enry.IsBinary(content)
}

// IsVendored reports whether path points into a vendored or third-party
// directory tree (vendor/, node_modules/, and similar).
func IsVendored(path string) bool {
	return enry.IsVendor(filepath.ToSlash(path))
}

// IsGenerated reports whether the file appears to be machine-generated.
func IsGenerated(path string, content []byte) bool {
	return enry.IsGenerated(filepath.ToSlash(path), content)
}

// Language returns a lowercase language name for the file, derived from
// its path and content. Returns LanguageUnknown when detection fails.
func Language(path string, content []byte) string {
	lang := enry.GetLanguage(filepath.Base(path), content)
	if lang == "" {
		return LanguageUnknown
	}
	return strings.ToLower(lang)
}

// Classification is the result of classifying a single file.
type Classification struct {
	// Language is the lowercase detected language, or LanguageUnknown.
	Language string

	// Binary indicates the content looks like binary data.
	Binary bool

	// Vendored indicates the path lies inside a vendored tree.
	Vendored bool
}

// Classify runs all detectors against a file in one pass.
func Classify(path string, content []byte) Classification {
	return Classification{
		Language: Language(path, content),
		Binary:   IsBinary(content),
		Vendored: IsVendored(path),
	}
}
