package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildLines(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantCount int
	}{
		{name: "empty", content: "", wantCount: 0},
		{name: "single line no newline", content: "hello", wantCount: 1},
		{name: "single line with newline", content: "hello\n", wantCount: 2},
		{name: "two lines", content: "a\nb\n", wantCount: 3},
		{name: "crlf", content: "a\r\nb\r\n", wantCount: 3},
		{name: "trailing content", content: "a\nb", wantCount: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := BuildLines([]byte(tt.content))
			assert.Len(t, lines, tt.wantCount)
		})
	}
}

func TestBuildLinesCRLF(t *testing.T) {
	lines := BuildLines([]byte("ab\r\ncd\n"))
	assert.Equal(t, 0, lines[0].StartOffset)
	assert.Equal(t, 2, lines[0].NewlineStart) // CR position
	assert.Equal(t, 4, lines[0].EndOffset)
	assert.Equal(t, 4, lines[1].StartOffset)
	assert.Equal(t, 6, lines[1].NewlineStart)
	assert.Equal(t, 7, lines[1].EndOffset)
}

func TestLineAt(t *testing.T) {
	snap := NewFileSnapshot("test.txt", []byte("first\nsecond\nthird"))

	line, col := snap.LineAt(0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	line, col = snap.LineAt(6)
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)

	line, col = snap.LineAt(8)
	assert.Equal(t, 2, line)
	assert.Equal(t, 3, col)

	line, col = snap.LineAt(-1)
	assert.Equal(t, 0, line)
	assert.Equal(t, 0, col)
}

func TestOffsetRoundTrip(t *testing.T) {
	snap := NewFileSnapshot("test.txt", []byte("abc\ndefg\nhi\n"))

	for off := 0; off < len(snap.Content); off++ {
		line, col := snap.LineAt(off)
		back, ok := snap.Offset(line, col)
		assert.True(t, ok)
		assert.Equal(t, off, back)
	}
}

func TestLineContent(t *testing.T) {
	snap := NewFileSnapshot("test.txt", []byte("alpha\r\nbeta\ngamma"))

	assert.Equal(t, []byte("alpha"), snap.LineContent(1))
	assert.Equal(t, []byte("beta"), snap.LineContent(2))
	assert.Equal(t, []byte("gamma"), snap.LineContent(3))
	assert.Nil(t, snap.LineContent(0))
	assert.Nil(t, snap.LineContent(4))
}
