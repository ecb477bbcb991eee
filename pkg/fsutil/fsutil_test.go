package fsutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("content\n"), 0644))

	content, info, err := ReadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []byte("content\n"), content)
	assert.Equal(t, path, info.Path)
	assert.Equal(t, int64(8), info.Size)
}

func TestReadFileNotFound(t *testing.T) {
	_, _, err := ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReadFileDirectory(t *testing.T) {
	_, _, err := ReadFile(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, ErrIsDirectory)
}

func TestCheckModified(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0644))

	_, info, err := ReadFile(context.Background(), path)
	require.NoError(t, err)

	modified, err := CheckModified(context.Background(), info)
	require.NoError(t, err)
	assert.False(t, modified)

	require.NoError(t, os.WriteFile(path, []byte("changed!"), 0644))

	modified, err = CheckModified(context.Background(), info)
	require.NoError(t, err)
	assert.True(t, modified)
}

func TestCheckModifiedDeleted(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	_, info, err := ReadFile(context.Background(), path)
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))

	modified, err := CheckModified(context.Background(), info)
	require.NoError(t, err)
	assert.True(t, modified)
}

func TestCheckModifiedNilInfo(t *testing.T) {
	_, err := CheckModified(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNilFileInfo)
}
