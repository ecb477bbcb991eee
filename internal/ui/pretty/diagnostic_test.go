package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/srccheck/internal/ui/pretty"
	"github.com/yaklabco/srccheck/pkg/check"
	"github.com/yaklabco/srccheck/pkg/config"
)

func TestFormatDiagnostic_Basic(t *testing.T) {
	styles := pretty.NewStyles(false) // No colors for easier testing

	diag := &check.Diagnostic{
		RuleID:      "SE002",
		Message:     "Bare carriage return",
		Severity:    config.SeverityError,
		FilePath:    "main.zig",
		StartLine:   10,
		StartColumn: 1,
		EndLine:     10,
		EndColumn:   2,
		ByteOffset:  120,
	}

	result := styles.FormatDiagnostic(diag, false, "")

	assert.Contains(t, result, "main.zig:10:1")
	assert.Contains(t, result, "[byte 120]")
	assert.Contains(t, result, "error")
	assert.Contains(t, result, "Bare carriage return")
	assert.Contains(t, result, "(SE002)")
}

func TestFormatDiagnostic_WithContext(t *testing.T) {
	styles := pretty.NewStyles(false)

	diag := &check.Diagnostic{
		RuleID:      "SE003",
		Message:     "Forbidden control character",
		Severity:    config.SeverityWarning,
		FilePath:    "main.zig",
		StartLine:   5,
		StartColumn: 3,
		EndLine:     5,
		EndColumn:   4,
	}

	sourceLine := "ab\x07cd"
	result := styles.FormatDiagnostic(diag, true, sourceLine)

	assert.Contains(t, result, sourceLine)
	assert.Contains(t, result, "^") // Caret marker
}

func TestFormatDiagnostic_WithSuggestion(t *testing.T) {
	styles := pretty.NewStyles(false)

	diag := &check.Diagnostic{
		RuleID:     "SE007",
		Message:    "Missing final newline",
		Severity:   config.SeverityInfo,
		FilePath:   "main.zig",
		StartLine:  1,
		Suggestion: "Add a trailing LF",
	}

	result := styles.FormatDiagnostic(diag, false, "")

	assert.Contains(t, result, "Suggestion:")
	assert.Contains(t, result, "Add a trailing LF")
}

func TestFormatSeverity_AllLevels(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		severity config.Severity
		expected string
	}{
		{config.SeverityError, "error"},
		{config.SeverityWarning, "warning"},
		{config.SeverityInfo, "info"},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			assert.Equal(t, tt.expected, styles.FormatSeverity(tt.severity))
		})
	}
}

func TestFormatSourceContext_SingleColumn(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSourceContext("test line", 5, 6)

	lines := strings.Split(result, "\n")
	assert.GreaterOrEqual(t, len(lines), 2) // Source line and marker line
	assert.Contains(t, result, "^")
	assert.NotContains(t, result, "~")
}

func TestFormatSourceContext_Span(t *testing.T) {
	styles := pretty.NewStyles(false)

	// Columns 3..6 mark a three-column span: caret plus two tildes
	result := styles.FormatSourceContext("abcdef", 3, 6)

	assert.Contains(t, result, "^~~")
}

func TestFormatSourceContext_ZeroColumn(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSourceContext("test line", 0, 0)

	// With column 0 only the source line is shown
	assert.Contains(t, result, "test line")
	assert.NotContains(t, result, "^")
}

func TestFormatFileHeader_WithIssues(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatFileHeader("src/parse.zig", 5)

	assert.Contains(t, result, "src/parse.zig")
	assert.Contains(t, result, "(5 issues)")
}

func TestFormatFileHeader_NoIssues(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatFileHeader("src/parse.zig", 0)

	assert.Contains(t, result, "src/parse.zig")
	assert.NotContains(t, result, "issues")
}

func TestFormatDiagnostic_WithRuleFormat(t *testing.T) {
	styles := pretty.NewStyles(false)

	diag := &check.Diagnostic{
		RuleID:      "SE002",
		RuleName:    "bare-carriage-return",
		Message:     "Bare carriage return",
		Severity:    config.SeverityWarning,
		FilePath:    "main.zig",
		StartLine:   1,
		StartColumn: 1,
	}

	tests := []struct {
		format   config.RuleFormat
		contains string
		excludes string
	}{
		{config.RuleFormatName, "(bare-carriage-return)", "(SE002)"},
		{config.RuleFormatID, "(SE002)", "(bare-carriage-return)"},
		{config.RuleFormatCombined, "(SE002/bare-carriage-return)", ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			result := styles.FormatDiagnosticWithFormat(diag, false, "", tt.format)
			assert.Contains(t, result, tt.contains)
			if tt.excludes != "" {
				assert.NotContains(t, result, tt.excludes)
			}
		})
	}
}
