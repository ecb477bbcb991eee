package rules

import (
	"fmt"

	"github.com/yaklabco/srccheck/pkg/check"
	"github.com/yaklabco/srccheck/pkg/config"
	"github.com/yaklabco/srccheck/pkg/fix"
	"github.com/yaklabco/srccheck/pkg/source"
)

// BareCarriageReturnRule reports CR bytes that are not immediately
// followed by LF. CRLF pairs are permitted; a lone CR is not a line
// terminator.
type BareCarriageReturnRule struct {
	check.BaseRule
}

// NewBareCarriageReturnRule creates a new bare carriage return rule.
func NewBareCarriageReturnRule() *BareCarriageReturnRule {
	return &BareCarriageReturnRule{
		BaseRule: check.NewBaseRule(
			"SE002",
			"bare-carriage-return",
			"Carriage returns must be immediately followed by a line feed",
			[]string{"encoding", "newline"},
			true,
		),
	}
}

// Apply reports every CR without a following LF.
func (r *BareCarriageReturnRule) Apply(ctx *check.RuleContext) ([]check.Diagnostic, error) {
	if ctx.File == nil {
		return nil, nil
	}

	content := ctx.File.Content
	var diags []check.Diagnostic

	for i := 0; i < len(content); i++ {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}
		if content[i] != '\r' {
			continue
		}
		if i+1 < len(content) && content[i+1] == '\n' {
			i++ // CRLF pair
			continue
		}

		builder := fix.NewEditBuilder()
		builder.ReplaceRange(i, i+1, "\n")

		rng := source.SourceRange{StartOffset: i, EndOffset: i + 1}
		diag := check.NewDiagnosticForRange(r.ID(), ctx.File, rng,
			"Bare carriage return without line feed").
			WithSeverity(config.SeverityError).
			WithSuggestion("Replace the carriage return with a line feed").
			WithFix(builder).
			Build()
		diags = append(diags, diag)
	}

	return diags, nil
}

// UnicodeLineSeparatorRule reports the Unicode line-break code points
// that the encoding contract forbids: U+0085 NEL, U+2028 LINE SEPARATOR,
// and U+2029 PARAGRAPH SEPARATOR. Only LF terminates lines.
type UnicodeLineSeparatorRule struct {
	check.BaseRule
}

// NewUnicodeLineSeparatorRule creates a new unicode line separator rule.
func NewUnicodeLineSeparatorRule() *UnicodeLineSeparatorRule {
	return &UnicodeLineSeparatorRule{
		BaseRule: check.NewBaseRule(
			"SE004",
			"unicode-line-separator",
			"NEL, LINE SEPARATOR, and PARAGRAPH SEPARATOR are not line terminators",
			[]string{"encoding", "newline"},
			true,
		),
	}
}

// Apply reports every NEL, LS, and PS code point.
func (r *UnicodeLineSeparatorRule) Apply(ctx *check.RuleContext) ([]check.Diagnostic, error) {
	if ctx.File == nil {
		return nil, nil
	}

	var diags []check.Diagnostic

	dec := source.NewDecoder(ctx.File.Content)
	for {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}
		cp, ok := dec.Next()
		if !ok {
			break
		}
		if cp.Malformed {
			continue
		}

		var name string
		switch cp.Rune {
		case 0x0085:
			name = "U+0085 NEXT LINE"
		case 0x2028:
			name = "U+2028 LINE SEPARATOR"
		case 0x2029:
			name = "U+2029 PARAGRAPH SEPARATOR"
		default:
			continue
		}

		builder := fix.NewEditBuilder()
		builder.ReplaceRange(cp.Start, cp.End, "\n")

		diag := check.NewDiagnosticForRange(r.ID(), ctx.File, cp.Span(),
			fmt.Sprintf("%s used as a line break", name)).
			WithSeverity(config.SeverityError).
			WithSuggestion("Replace with a line feed").
			WithFix(builder).
			Build()
		diags = append(diags, diag)
	}

	return diags, nil
}

// FinalNewlineRule recommends that non-empty files end with a line feed.
// A missing final newline is never a validity error.
type FinalNewlineRule struct {
	check.BaseRule
}

// NewFinalNewlineRule creates a new final newline rule.
func NewFinalNewlineRule() *FinalNewlineRule {
	return &FinalNewlineRule{
		BaseRule: check.NewBaseRule(
			"SE007",
			"final-newline",
			"Files should end with a line feed",
			[]string{"newline", "style"},
			true,
		),
	}
}

// DefaultSeverity returns info; this is a recommendation, not an error.
func (r *FinalNewlineRule) DefaultSeverity() config.Severity {
	return config.SeverityInfo
}

// Apply checks that the file ends with a newline.
func (r *FinalNewlineRule) Apply(ctx *check.RuleContext) ([]check.Diagnostic, error) {
	if ctx.File == nil || len(ctx.File.Content) == 0 {
		return nil, nil
	}

	content := ctx.File.Content
	if content[len(content)-1] == '\n' {
		return nil, nil
	}

	builder := fix.NewEditBuilder()
	builder.Insert(len(content), "\n")

	rng := source.SourceRange{StartOffset: len(content), EndOffset: len(content)}
	diag := check.NewDiagnosticForRange(r.ID(), ctx.File, rng,
		"File does not end with a line feed").
		WithSeverity(config.SeverityInfo).
		WithSuggestion("Add a line feed at end of file").
		WithFix(builder).
		Build()
	return []check.Diagnostic{diag}, nil
}
