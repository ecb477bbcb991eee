package rules

import (
	"fmt"

	"github.com/yaklabco/srccheck/pkg/check"
	"github.com/yaklabco/srccheck/pkg/config"
	"github.com/yaklabco/srccheck/pkg/fix"
	"github.com/yaklabco/srccheck/pkg/source"
)

// controlName returns a printable name for known control characters.
func controlName(r rune) string {
	switch r {
	case 0x00:
		return "NUL"
	case 0x07:
		return "BEL"
	case 0x08:
		return "BS"
	case 0x0B:
		return "VT"
	case 0x0C:
		return "FF"
	case 0x1B:
		return "ESC"
	case 0x7F:
		return "DEL"
	default:
		return fmt.Sprintf("U+%04X", r)
	}
}

// ForbiddenControlRule reports ASCII control characters that the encoding
// contract forbids: U+0000-U+0008, U+000B-U+000C, U+000E-U+001F, and
// U+007F. Tab, LF, and CR are handled elsewhere and are not reported here.
type ForbiddenControlRule struct {
	check.BaseRule
}

// NewForbiddenControlRule creates a new forbidden control character rule.
func NewForbiddenControlRule() *ForbiddenControlRule {
	return &ForbiddenControlRule{
		BaseRule: check.NewBaseRule(
			"SE003",
			"forbidden-control-character",
			"Control characters other than tab, LF, and CR are not permitted",
			[]string{"encoding", "control"},
			true,
		),
	}
}

// Apply reports every forbidden ASCII control character.
func (r *ForbiddenControlRule) Apply(ctx *check.RuleContext) ([]check.Diagnostic, error) {
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
		if cp.Malformed || !forbiddenControl(cp.Rune) {
			continue
		}

		builder := fix.NewEditBuilder()
		builder.Delete(cp.Start, cp.End)

		diag := check.NewDiagnosticForRange(r.ID(), ctx.File, cp.Span(),
			fmt.Sprintf("Forbidden control character %s", controlName(cp.Rune))).
			WithSeverity(config.SeverityError).
			WithSuggestion("Delete the control character").
			WithFix(builder).
			Build()
		diags = append(diags, diag)
	}

	return diags, nil
}

// forbiddenControl reports whether r is a forbidden ASCII control
// character. CR is excluded here (covered by bare-carriage-return);
// NEL, LS, and PS are excluded (covered by unicode-line-separator).
func forbiddenControl(r rune) bool {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return false
	case r < 0x20:
		return true
	case r == 0x7F:
		return true
	default:
		return false
	}
}
