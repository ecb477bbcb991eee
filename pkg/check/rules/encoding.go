package rules

import (
	"fmt"

	"github.com/yaklabco/srccheck/pkg/check"
	"github.com/yaklabco/srccheck/pkg/config"
	"github.com/yaklabco/srccheck/pkg/fix"
	"github.com/yaklabco/srccheck/pkg/source"
	"github.com/yaklabco/srccheck/pkg/wellformed"
)

// replacementChar is substituted for malformed byte sequences when fixing.
const replacementChar = "�"

// MalformedUTF8Rule reports byte sequences that do not decode to valid
// Unicode scalar values: invalid continuation bytes, overlong encodings,
// surrogate halves, out-of-range scalars, and truncated sequences.
type MalformedUTF8Rule struct {
	check.BaseRule
}

// NewMalformedUTF8Rule creates a new malformed UTF-8 rule.
func NewMalformedUTF8Rule() *MalformedUTF8Rule {
	return &MalformedUTF8Rule{
		BaseRule: check.NewBaseRule(
			"SE001",
			"malformed-utf8",
			"Source bytes must form well-formed UTF-8",
			[]string{"encoding"},
			true,
		),
	}
}

// Apply reports each maximal run of malformed bytes as one diagnostic.
func (r *MalformedUTF8Rule) Apply(ctx *check.RuleContext) ([]check.Diagnostic, error) {
	if ctx.File == nil {
		return nil, nil
	}

	var diags []check.Diagnostic

	dec := source.NewDecoder(ctx.File.Content)
	runStart := -1
	runEnd := -1

	flush := func() {
		if runStart < 0 {
			return
		}
		builder := fix.NewEditBuilder()
		builder.ReplaceRange(runStart, runEnd, replacementChar)

		rng := source.SourceRange{StartOffset: runStart, EndOffset: runEnd}
		msg := fmt.Sprintf("Malformed UTF-8 sequence (%d byte(s))", runEnd-runStart)
		diag := check.NewDiagnosticForRange(r.ID(), ctx.File, rng, msg).
			WithSeverity(config.SeverityError).
			WithSuggestion("Replace the bytes with U+FFFD or re-encode the file as UTF-8").
			WithFix(builder).
			Build()
		diags = append(diags, diag)
		runStart = -1
	}

	for {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}
		cp, ok := dec.Next()
		if !ok {
			break
		}
		if cp.Malformed {
			if runStart < 0 {
				runStart = cp.Start
			}
			runEnd = cp.End
			continue
		}
		flush()
	}
	flush()

	return diags, nil
}

// MisplacedBOMRule reports U+FEFF byte order marks anywhere past the
// start of the file. A leading BOM is handled by LeadingBOMRule.
type MisplacedBOMRule struct {
	check.BaseRule
}

// NewMisplacedBOMRule creates a new misplaced byte order mark rule.
func NewMisplacedBOMRule() *MisplacedBOMRule {
	return &MisplacedBOMRule{
		BaseRule: check.NewBaseRule(
			"SE005",
			"misplaced-byte-order-mark",
			"U+FEFF is only permitted as the very first code point",
			[]string{"encoding", "bom"},
			true,
		),
	}
}

// Apply reports every non-initial U+FEFF.
func (r *MisplacedBOMRule) Apply(ctx *check.RuleContext) ([]check.Diagnostic, error) {
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
		if cp.Malformed || cp.Rune != wellformed.BOM || cp.Start == 0 {
			continue
		}

		builder := fix.NewEditBuilder()
		builder.Delete(cp.Start, cp.End)

		diag := check.NewDiagnosticForRange(r.ID(), ctx.File, cp.Span(),
			"Byte order mark U+FEFF is not permitted here").
			WithSeverity(config.SeverityError).
			WithSuggestion("Delete the byte order mark").
			WithFix(builder).
			Build()
		diags = append(diags, diag)
	}

	return diags, nil
}

// LeadingBOMRule reports a U+FEFF at the very start of the file. The
// encoding contract tolerates it, so this rule is off by default and
// only enabled under the strict profile.
type LeadingBOMRule struct {
	check.BaseRule
}

// NewLeadingBOMRule creates a new leading byte order mark rule.
func NewLeadingBOMRule() *LeadingBOMRule {
	return &LeadingBOMRule{
		BaseRule: check.NewBaseRule(
			"SE006",
			"leading-byte-order-mark",
			"Files should not start with a U+FEFF byte order mark",
			[]string{"encoding", "bom", check.TagStrict},
			true,
		),
	}
}

// DefaultEnabled returns false; the strict profile enables this rule.
func (r *LeadingBOMRule) DefaultEnabled() bool {
	return false
}

// DefaultSeverity returns warning.
func (r *LeadingBOMRule) DefaultSeverity() config.Severity {
	return config.SeverityWarning
}

// Apply reports a BOM at offset 0.
func (r *LeadingBOMRule) Apply(ctx *check.RuleContext) ([]check.Diagnostic, error) {
	if ctx.File == nil || len(ctx.File.Content) == 0 {
		return nil, nil
	}

	dec := source.NewDecoder(ctx.File.Content)
	cp, ok := dec.Next()
	if !ok || cp.Malformed || cp.Rune != wellformed.BOM {
		return nil, nil
	}

	builder := fix.NewEditBuilder()
	builder.Delete(cp.Start, cp.End)

	diag := check.NewDiagnosticForRange(r.ID(), ctx.File, cp.Span(),
		"File starts with a byte order mark").
		WithSeverity(config.SeverityWarning).
		WithSuggestion("Delete the byte order mark").
		WithFix(builder).
		Build()
	return []check.Diagnostic{diag}, nil
}
