package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/srccheck/pkg/check"
	_ "github.com/yaklabco/srccheck/pkg/check/rules"
	"github.com/yaklabco/srccheck/pkg/config"
)

func newTestRunner() *Runner {
	engine := check.NewEngine(check.NewSnapshotParser(), check.DefaultRegistry)
	return New(check.NewPipeline(engine))
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func TestDiscover(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.txt":          "hello\n",
		"sub/b.txt":      "world\n",
		".hidden/c.txt":  "skip\n",
		".hiddenfile":    "skip\n",
		"sub/.dotfile":   "skip\n",
		"vendor/lib.txt": "skip\n",
	})

	opts := Options{
		WorkingDir:   dir,
		SkipVendored: true,
	}

	files, err := Discover(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "a.txt"), files[0])
	assert.Equal(t, filepath.Join(dir, "sub", "b.txt"), files[1])
}

func TestDiscoverExtensionFilter(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.zig": "code\n",
		"b.txt": "text\n",
	})

	opts := Options{
		WorkingDir: dir,
		Extensions: []string{".zig"},
	}

	files, err := Discover(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(dir, "a.zig"), files[0])
}

func TestDiscoverExcludeGlobs(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"keep.txt":          "x\n",
		"testdata/skip.txt": "x\n",
	})

	opts := Options{
		WorkingDir:   dir,
		ExcludeGlobs: []string{"testdata/**"},
	}

	files, err := Discover(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(dir, "keep.txt"), files[0])
}

func TestDiscoverExplicitFile(t *testing.T) {
	dir := writeFiles(t, map[string]string{"only.txt": "x\n"})

	opts := Options{
		WorkingDir: dir,
		Paths:      []string{"only.txt"},
	}

	files, err := Discover(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, files, 1)
}

func TestDiscoverMissingPath(t *testing.T) {
	opts := Options{
		WorkingDir: t.TempDir(),
		Paths:      []string{"nope.txt"},
	}

	_, err := Discover(context.Background(), opts)
	require.Error(t, err)
}

func TestRunCleanFiles(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.txt": "clean\n",
		"b.txt": "also clean\n",
	})

	result, err := newTestRunner().Run(context.Background(), Options{
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Stats.FilesDiscovered)
	assert.Equal(t, 2, result.Stats.FilesProcessed)
	assert.False(t, result.HasIssues())
	assert.False(t, result.HasFailures())
}

func TestRunFindsIssues(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"bad.txt":  "a\rb\n",
		"good.txt": "fine\n",
	})

	result, err := newTestRunner().Run(context.Background(), Options{
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)
	assert.True(t, result.HasIssues())
	assert.True(t, result.HasFailures())
	assert.Equal(t, 1, result.Stats.FilesWithIssues)
	assert.Equal(t, 1, result.Stats.DiagnosticsBySeverity["error"])

	// Deterministic ordering by path.
	require.Len(t, result.Files, 2)
	assert.Equal(t, filepath.Join(dir, "bad.txt"), result.Files[0].Path)
	assert.Equal(t, filepath.Join(dir, "good.txt"), result.Files[1].Path)
}

func TestRunFixMode(t *testing.T) {
	dir := writeFiles(t, map[string]string{"bad.txt": "a\rb"})

	cfg := config.NewConfig()
	cfg.Fix = true
	cfg.NoBackups = true

	result, err := newTestRunner().Run(context.Background(), Options{
		WorkingDir: dir,
		Config:     cfg,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.FilesModified)
	assert.GreaterOrEqual(t, result.Stats.DiagnosticsFixed, 2)

	content, err := os.ReadFile(filepath.Join(dir, "bad.txt"))
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(content))
}

func TestRunSkipsBinary(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bin.dat"),
		[]byte{0x00, 0x01, 0xFF, 0xFE, 0x00}, 0644))

	result, err := newTestRunner().Run(context.Background(), Options{
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.FilesSkipped)
	assert.False(t, result.HasIssues())
}

func TestRunEmptyDirectory(t *testing.T) {
	result, err := newTestRunner().Run(context.Background(), Options{
		WorkingDir: t.TempDir(),
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Stats.FilesDiscovered)
}

func TestRunCancelled(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.txt": "x\n"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestRunner().Run(ctx, Options{
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	require.Error(t, err)
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Extensions = []string{".zig"}
	cfg.Ignore = []string{"build/**"}
	cfg.Jobs = 4

	opts := OptionsFromConfig(cfg, []string{"src"})
	assert.Equal(t, []string{"src"}, opts.Paths)
	assert.Equal(t, []string{".zig"}, opts.Extensions)
	assert.Equal(t, []string{"build/**"}, opts.ExcludeGlobs)
	assert.True(t, opts.SkipVendored)
	assert.Equal(t, 4, opts.Jobs)
}
