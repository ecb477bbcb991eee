package fix

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDiffNoChanges(t *testing.T) {
	content := []byte("same\ncontent\n")
	assert.Nil(t, GenerateDiff("file.txt", content, content))
}

func TestGenerateDiffLineChange(t *testing.T) {
	orig := []byte("one\ntwo\nthree\n")
	mod := []byte("one\nTWO\nthree\n")

	d := GenerateDiff("file.txt", orig, mod)
	require.NotNil(t, d)
	assert.True(t, d.HasChanges())
	assert.Equal(t, 1, d.Additions)
	assert.Equal(t, 1, d.Deletions)

	out := d.String()
	assert.Contains(t, out, "--- a/file.txt")
	assert.Contains(t, out, "+++ b/file.txt")
	assert.Contains(t, out, "-two")
	assert.Contains(t, out, "+TWO")
}

func TestGenerateDiffAddedLine(t *testing.T) {
	orig := []byte("a\nb\n")
	mod := []byte("a\nb\nc\n")

	d := GenerateDiff("f", orig, mod)
	require.NotNil(t, d)
	assert.Equal(t, 1, d.Additions)
	assert.Equal(t, 0, d.Deletions)
}

func TestGenerateDiffSeparateHunks(t *testing.T) {
	var orig, mod strings.Builder
	for i := 0; i < 30; i++ {
		orig.WriteString("line\n")
		mod.WriteString("line\n")
	}
	origLines := strings.Split(strings.TrimSuffix(orig.String(), "\n"), "\n")
	modLines := strings.Split(strings.TrimSuffix(mod.String(), "\n"), "\n")
	origLines[2] = "changed early"
	modLines[2] = "CHANGED EARLY"
	origLines[25] = "changed late"
	modLines[25] = "CHANGED LATE"

	d := GenerateDiff("f",
		[]byte(strings.Join(origLines, "\n")+"\n"),
		[]byte(strings.Join(modLines, "\n")+"\n"))
	require.NotNil(t, d)
	assert.Len(t, d.Hunks, 2)
}
