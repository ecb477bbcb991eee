package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/srccheck/pkg/check"
	"github.com/yaklabco/srccheck/pkg/config"
)

// FormatDiagnostic formats a single diagnostic for terminal output.
// Uses ID format for backwards compatibility.
func (s *Styles) FormatDiagnostic(diag *check.Diagnostic, showContext bool, sourceLine string) string {
	return s.FormatDiagnosticWithFormat(diag, showContext, sourceLine, config.RuleFormatID)
}

// FormatDiagnosticWithFormat formats a diagnostic with configurable rule identifier format.
func (s *Styles) FormatDiagnosticWithFormat(diag *check.Diagnostic, showContext bool, sourceLine string, ruleFormat config.RuleFormat) string {
	var builder strings.Builder

	// Location: path:line:col, plus the byte offset since encoding
	// issues are byte-oriented
	location := fmt.Sprintf("%s:%d:%d %s",
		s.FilePath.Render(diag.FilePath),
		diag.StartLine,
		diag.StartColumn,
		s.Dim.Render(fmt.Sprintf("[byte %d]", diag.ByteOffset)),
	)

	severity := s.FormatSeverity(diag.Severity)

	// Rule identifier formatted according to config
	ruleIdentifier := config.FormatRuleID(ruleFormat, diag.RuleID, diag.RuleName)
	ruleDisplay := s.RuleID.Render("(" + ruleIdentifier + ")")

	// Main line: location  severity  message  (rule-id)
	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		severity,
		s.Message.Render(diag.Message),
		ruleDisplay,
	))

	// Source context with a span marker under the offending range
	if showContext && sourceLine != "" {
		endColumn := diag.EndColumn
		if diag.EndLine != diag.StartLine {
			// Multi-line spans only get a caret on the first line.
			endColumn = diag.StartColumn + 1
		}
		builder.WriteString(s.FormatSourceContext(sourceLine, diag.StartColumn, endColumn))
	}

	// Suggestion
	if diag.Suggestion != "" {
		builder.WriteString("    " + s.Dim.Render("Suggestion:") + " " +
			s.Suggestion.Render(diag.Suggestion) + "\n")
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// FormatSourceContext formats the source line with a marker under the
// column range [startColumn, endColumn). A caret marks the start and
// tildes extend across the rest of the span.
func (s *Styles) FormatSourceContext(line string, startColumn, endColumn int) string {
	var builder strings.Builder

	// Indent to align with diagnostic output
	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if startColumn > 0 {
		marker := "^"
		if span := endColumn - startColumn; span > 1 {
			marker += strings.Repeat("~", span-1)
		}
		padding := indent + strings.Repeat(" ", startColumn-1)
		builder.WriteString(padding + s.Caret.Render(marker) + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}
