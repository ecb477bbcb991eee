package reporter_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/srccheck/pkg/config"
	"github.com/yaklabco/srccheck/pkg/reporter"
	"github.com/yaklabco/srccheck/pkg/runner"
)

func newSummaryReporter(t *testing.T, buf *bytes.Buffer) reporter.Reporter {
	t.Helper()
	rep, err := reporter.New(reporter.Options{
		Writer:     buf,
		Format:     reporter.FormatSummary,
		Color:      "never",
		RuleFormat: config.RuleFormatID,
	})
	require.NoError(t, err)
	return rep
}

func TestSummaryReporter_NoIssues(t *testing.T) {
	var buf bytes.Buffer
	rep := newSummaryReporter(t, &buf)

	result := &runner.Result{
		Files: []runner.FileOutcome{},
		Stats: runner.Stats{DiagnosticsBySeverity: map[string]int{}},
	}

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Contains(t, buf.String(), "No issues found")
}

func TestSummaryReporter_RuleAndFileBreakdown(t *testing.T) {
	var buf bytes.Buffer
	rep := newSummaryReporter(t, &buf)

	result := createTestResult()

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	output := buf.String()
	assert.Contains(t, output, "Issues by rule")
	assert.Contains(t, output, "SE002")
	assert.Contains(t, output, "SE003")
	assert.Contains(t, output, "Issues by file")
	assert.Contains(t, output, "main.zig")
	assert.Contains(t, output, "Total:")
	assert.Contains(t, output, "2 issues")
}

func TestSummaryReporter_LanguageBreakdown(t *testing.T) {
	var buf bytes.Buffer
	rep := newSummaryReporter(t, &buf)

	result := createTestResult()

	_, err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Issues by language")
	assert.Contains(t, output, "zig")
}

func TestSummaryReporter_RuleFormatName(t *testing.T) {
	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{
		Writer:     &buf,
		Format:     reporter.FormatSummary,
		Color:      "never",
		RuleFormat: config.RuleFormatName,
	})
	require.NoError(t, err)

	result := createTestResult()

	_, err = rep.Report(context.Background(), result)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "bare-carriage-return")
}
