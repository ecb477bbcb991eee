package reporter

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/yaklabco/srccheck/internal/ui/pretty"
	"github.com/yaklabco/srccheck/pkg/analysis"
	"github.com/yaklabco/srccheck/pkg/config"
)

const (
	summaryLabelWidth = 40
	maxRuleNameLength = 38
	maxFilePathLength = 38
)

// SummaryRenderer formats results as aggregated per-rule, per-file, and
// per-language breakdowns.
type SummaryRenderer struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewSummaryRenderer creates a new summary renderer.
func NewSummaryRenderer(opts Options) *SummaryRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Render implements Renderer.
func (r *SummaryRenderer) Render(_ context.Context, report *analysis.Report) error {
	if report.Totals.Issues == 0 {
		fmt.Fprintln(r.out, r.styles.Success.Render("No issues found"))
		return nil
	}

	r.renderRules(report.ByRule)
	fmt.Fprintln(r.out)
	r.renderFiles(report.ByFile)
	if len(report.ByLanguage) > 0 {
		fmt.Fprintln(r.out)
		r.renderLanguages(report.ByLanguage)
	}

	fmt.Fprintln(r.out)
	r.renderTotals(report.Totals)

	return nil
}

func (r *SummaryRenderer) renderRules(rules []analysis.RuleAnalysis) {
	if len(rules) == 0 {
		return
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Issues by rule"))

	for _, rule := range rules {
		label := config.FormatRuleID(r.opts.RuleFormat, rule.RuleID, rule.RuleName)
		if label == "" {
			label = rule.RuleID
		}
		label = truncateLabel(label, maxRuleNameLength)
		if rule.Fixable {
			label += " " + r.styles.Success.Render("(fixable)")
		}

		fmt.Fprintf(r.out, "  %-*s %s\n",
			summaryLabelWidth, label,
			r.formatCounts(rule.Issues, rule.Errors, rule.Warnings),
		)
	}
}

func (r *SummaryRenderer) renderFiles(files []analysis.FileAnalysis) {
	if len(files) == 0 {
		return
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Issues by file"))

	for _, file := range files {
		path := file.Path
		if len(path) > maxFilePathLength {
			path = "…" + path[len(path)-(maxFilePathLength-1):]
		}

		fmt.Fprintf(r.out, "  %-*s %s\n",
			summaryLabelWidth, path,
			r.formatCounts(file.Issues, file.Errors, file.Warnings),
		)
	}
}

func (r *SummaryRenderer) renderLanguages(languages []analysis.LanguageAnalysis) {
	fmt.Fprintln(r.out, r.styles.Bold.Render("Issues by language"))

	for _, lang := range languages {
		fileWord := "files"
		if lang.Files == 1 {
			fileWord = "file"
		}
		fmt.Fprintf(r.out, "  %-*s %d issues in %d %s\n",
			summaryLabelWidth, lang.Language, lang.Issues, lang.Files, fileWord,
		)
	}
}

func (r *SummaryRenderer) formatCounts(issues, errors, warnings int) string {
	parts := []string{fmt.Sprintf("%d", issues)}
	if errors > 0 {
		parts = append(parts, r.styles.Error.Render(fmt.Sprintf("%d errors", errors)))
	}
	if warnings > 0 {
		parts = append(parts, r.styles.Warning.Render(fmt.Sprintf("%d warnings", warnings)))
	}
	return strings.Join(parts, "  ")
}

func (r *SummaryRenderer) renderTotals(totals analysis.Totals) {
	issueWord := "issues"
	if totals.Issues == 1 {
		issueWord = "issue"
	}

	var severityParts []string
	if totals.Errors > 0 {
		severityParts = append(severityParts, r.styles.Error.Render(fmt.Sprintf("%d errors", totals.Errors)))
	}
	if totals.Warnings > 0 {
		severityParts = append(severityParts, r.styles.Warning.Render(fmt.Sprintf("%d warnings", totals.Warnings)))
	}

	head := fmt.Sprintf("%d %s", totals.Issues, issueWord)
	if len(severityParts) > 0 {
		head = fmt.Sprintf("%d %s (%s)", totals.Issues, issueWord, strings.Join(severityParts, ", "))
	}

	fileWord := "files"
	if totals.FilesWithIssues == 1 {
		fileWord = "file"
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Total: ")+head+fmt.Sprintf(" in %d %s", totals.FilesWithIssues, fileWord))
}

func truncateLabel(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "…"
}
