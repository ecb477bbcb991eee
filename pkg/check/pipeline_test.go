package check

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/srccheck/pkg/config"
	"github.com/yaklabco/srccheck/pkg/fix"
	"github.com/yaklabco/srccheck/pkg/fsutil"
	"github.com/yaklabco/srccheck/pkg/source"
)

// crFixRule converts bare CRs to LFs; a minimal fixable rule for
// pipeline tests without importing the rules package.
type crFixRule struct {
	BaseRule
}

func newCRFixRule() *crFixRule {
	return &crFixRule{
		BaseRule: NewBaseRule("SE902", "cr-fix", "test cr fix rule", nil, true),
	}
}

func (r *crFixRule) Apply(ctx *RuleContext) ([]Diagnostic, error) {
	var diags []Diagnostic
	content := ctx.File.Content
	for i := 0; i < len(content); i++ {
		if content[i] != '\r' {
			continue
		}
		if i+1 < len(content) && content[i+1] == '\n' {
			i++
			continue
		}
		builder := fix.NewEditBuilder()
		builder.ReplaceRange(i, i+1, "\n")
		rng := source.SourceRange{StartOffset: i, EndOffset: i + 1}
		diags = append(diags, NewDiagnosticForRange(r.ID(), ctx.File,
			rng, "bare carriage return").
			WithFix(builder).
			Build())
	}
	return diags, nil
}

func newPipelineForTest() *Pipeline {
	registry := NewRegistry()
	registry.Register(newCRFixRule())
	return NewPipeline(NewEngine(NewSnapshotParser(), registry))
}

func writeTestFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestProcessFileNoIssues(t *testing.T) {
	p := newPipelineForTest()
	path := writeTestFile(t, []byte("clean\n"))

	result, err := p.ProcessFile(context.Background(), path, config.NewConfig(), DefaultPipelineOptions())
	require.NoError(t, err)
	assert.False(t, result.Modified)
	assert.False(t, result.Written)
	assert.Equal(t, "ok", result.Summary())
}

func TestProcessFileReportsWithoutFix(t *testing.T) {
	p := newPipelineForTest()
	path := writeTestFile(t, []byte("a\rb\n"))

	result, err := p.ProcessFile(context.Background(), path, config.NewConfig(), DefaultPipelineOptions())
	require.NoError(t, err)
	assert.True(t, result.HasIssues())
	assert.False(t, result.Written)
	assert.Equal(t, "issues found", result.Summary())
}

func TestProcessFileFixWrites(t *testing.T) {
	p := newPipelineForTest()
	path := writeTestFile(t, []byte("a\rb\n"))

	cfg := config.NewConfig()
	cfg.Fix = true
	opts := DefaultPipelineOptions()
	opts.Fix = true

	result, err := p.ProcessFile(context.Background(), path, cfg, opts)
	require.NoError(t, err)
	assert.True(t, result.Modified)
	assert.True(t, result.Written)
	assert.Equal(t, 1, result.FixPasses)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(content))
}

func TestProcessFileDryRun(t *testing.T) {
	p := newPipelineForTest()
	original := []byte("a\rb\n")
	path := writeTestFile(t, original)

	cfg := config.NewConfig()
	cfg.Fix = true
	cfg.DryRun = true
	opts := DefaultPipelineOptions()
	opts.Fix = true
	opts.DryRun = true

	result, err := p.ProcessFile(context.Background(), path, cfg, opts)
	require.NoError(t, err)
	assert.True(t, result.Modified)
	assert.False(t, result.Written)
	require.NotNil(t, result.Diff)
	assert.True(t, result.Diff.HasChanges())

	// File untouched.
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, content)
}

func TestProcessFileBackup(t *testing.T) {
	p := newPipelineForTest()
	path := writeTestFile(t, []byte("a\rb\n"))

	opts := DefaultPipelineOptions()
	opts.Fix = true
	opts.Backup = fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}
	cfg := config.NewConfig()
	cfg.Fix = true

	result, err := p.ProcessFile(context.Background(), path, cfg, opts)
	require.NoError(t, err)
	assert.True(t, result.BackupCreated)

	backup, err := os.ReadFile(path + fsutil.BackupSuffix)
	require.NoError(t, err)
	assert.Equal(t, "a\rb\n", string(backup))
}

func TestProcessFileSkipsBinary(t *testing.T) {
	p := newPipelineForTest()
	path := writeTestFile(t, []byte{0x00, 0x01, 0x02, 0xFF, 0xFE})

	result, err := p.ProcessFile(context.Background(), path, config.NewConfig(), DefaultPipelineOptions())
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Equal(t, "skipped: binary content", result.Summary())
}

func TestProcessFileNotFound(t *testing.T) {
	p := newPipelineForTest()

	_, err := p.ProcessFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt"),
		config.NewConfig(), DefaultPipelineOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.True(t, IsPipelineError(err))
}

func TestProcessContentMultiPass(t *testing.T) {
	p := newPipelineForTest()

	opts := DefaultPipelineOptions()
	opts.Fix = true
	cfg := config.NewConfig()
	cfg.Fix = true

	result, err := p.ProcessContent(context.Background(), "mem.txt",
		[]byte("a\rb\rc"), cfg, opts)
	require.NoError(t, err)
	assert.True(t, result.Modified)
	assert.Equal(t, "a\nb\nc", string(result.ModifiedContent))
	assert.Equal(t, 2, result.TotalEditsApplied)
}

func TestPipelineOptionsFromConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Fix = true
	cfg.DryRun = true
	cfg.NoBackups = true

	opts := PipelineOptionsFromConfig(cfg)
	assert.True(t, opts.Fix)
	assert.True(t, opts.DryRun)
	assert.False(t, opts.Backup.Enabled, "--no-backups wins over config")
	assert.True(t, opts.SkipBinary)
}
