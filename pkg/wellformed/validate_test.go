package wellformed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateASCII(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "single line with newline", input: "const x = 1;\n"},
		{name: "multiple lines", input: "line one\nline two\nline three\n"},
		{name: "no trailing newline", input: "a\nb"},
		{name: "tabs allowed", input: "\tindented\n"},
		{name: "blank lines", input: "a\n\n\nb\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate([]byte(tt.input))
			assert.True(t, result.Valid, "expected valid, got %s", result)
		})
	}
}

func TestValidateMalformedUTF8(t *testing.T) {
	tests := []struct {
		name       string
		input      []byte
		wantOffset int
	}{
		{
			name:       "lone continuation byte",
			input:      []byte{'a', 0x80, 'b'},
			wantOffset: 1,
		},
		{
			name:       "truncated two-byte sequence at end",
			input:      []byte{'a', 'b', 0xC3},
			wantOffset: 2,
		},
		{
			name:       "truncated three-byte sequence",
			input:      []byte{0xE2, 0x82, 'x'},
			wantOffset: 0,
		},
		{
			name:       "overlong encoding of slash",
			input:      []byte{0xC0, 0xAF},
			wantOffset: 0,
		},
		{
			name:       "surrogate half",
			input:      []byte{0xED, 0xA0, 0x80},
			wantOffset: 0,
		},
		{
			name:       "out of range scalar",
			input:      []byte{0xF4, 0x90, 0x80, 0x80},
			wantOffset: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.input)
			assert.False(t, result.Valid)
			assert.Equal(t, ReasonMalformedUTF8, result.Reason)
			assert.Equal(t, tt.wantOffset, result.Offset)
		})
	}
}

func TestValidateByteOrderMark(t *testing.T) {
	t.Run("leading BOM is skipped", func(t *testing.T) {
		result := Validate([]byte("\uFEFFhello\n"))
		assert.True(t, result.Valid)
	})

	t.Run("leading BOM alone", func(t *testing.T) {
		result := Validate([]byte("\uFEFF"))
		assert.True(t, result.Valid)
	})

	t.Run("BOM after first code point is forbidden", func(t *testing.T) {
		result := Validate([]byte("a\uFEFFb"))
		assert.False(t, result.Valid)
		assert.Equal(t, ReasonForbiddenCodePoint, result.Reason)
		assert.Equal(t, rune(0xFEFF), result.CodePoint)
		assert.Equal(t, 1, result.Offset)
	})

	t.Run("second BOM after leading BOM is forbidden", func(t *testing.T) {
		result := Validate([]byte("\uFEFF\uFEFF"))
		assert.False(t, result.Valid)
		assert.Equal(t, ReasonForbiddenCodePoint, result.Reason)
		assert.Equal(t, 3, result.Offset)
	})
}

func TestValidateCarriageReturn(t *testing.T) {
	t.Run("CRLF is permitted", func(t *testing.T) {
		result := Validate([]byte("a\r\nb"))
		assert.True(t, result.Valid)
	})

	t.Run("bare CR between letters", func(t *testing.T) {
		result := Validate([]byte("a\rb"))
		assert.False(t, result.Valid)
		assert.Equal(t, ReasonBareCarriageReturn, result.Reason)
		assert.Equal(t, 1, result.Offset)
	})

	t.Run("CR at end of input", func(t *testing.T) {
		result := Validate([]byte("a\r"))
		assert.False(t, result.Valid)
		assert.Equal(t, ReasonBareCarriageReturn, result.Reason)
		assert.Equal(t, 1, result.Offset)
	})

	t.Run("CR followed by CR", func(t *testing.T) {
		result := Validate([]byte("\r\r\n"))
		assert.False(t, result.Valid)
		assert.Equal(t, ReasonBareCarriageReturn, result.Reason)
		assert.Equal(t, 0, result.Offset)
	})
}

func TestValidateForbiddenCodePoints(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantOffset int
		wantRune   rune
	}{
		{name: "NUL", input: "ab\x00", wantOffset: 2, wantRune: 0x00},
		{name: "BEL", input: "a\x07b", wantOffset: 1, wantRune: 0x07},
		{name: "vertical tab", input: "\x0B", wantOffset: 0, wantRune: 0x0B},
		{name: "form feed", input: "x\x0C", wantOffset: 1, wantRune: 0x0C},
		{name: "escape", input: "\x1B[0m", wantOffset: 0, wantRune: 0x1B},
		{name: "DEL", input: "a\x7F", wantOffset: 1, wantRune: 0x7F},
		{name: "NEL", input: "ab", wantOffset: 1, wantRune: 0x85},
		{name: "line separator", input: "a b", wantOffset: 1, wantRune: 0x2028},
		{name: "paragraph separator", input: "a b", wantOffset: 1, wantRune: 0x2029},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate([]byte(tt.input))
			assert.False(t, result.Valid)
			assert.Equal(t, ReasonForbiddenCodePoint, result.Reason)
			assert.Equal(t, tt.wantOffset, result.Offset)
			assert.Equal(t, tt.wantRune, result.CodePoint)
		})
	}
}

func TestValidateNonASCIIText(t *testing.T) {
	tests := []string{
		"héllo wörld\n",
		"日本語のコメント\n",
		"emoji 🎉 allowed\n",
		"\uFEFF// file with BOM\nconst π = 3.14159;\n",
	}

	for _, input := range tests {
		result := Validate([]byte(input))
		assert.True(t, result.Valid, "input %q: got %s", input, result)
	}
}

func TestValidateFirstViolationWins(t *testing.T) {
	// A bare CR at offset 1 precedes a BEL at offset 3.
	result := Validate([]byte("a\rb\x07"))
	assert.Equal(t, ReasonBareCarriageReturn, result.Reason)
	assert.Equal(t, 1, result.Offset)
}

func TestValidateIdempotent(t *testing.T) {
	inputs := [][]byte{
		[]byte("hello\n"),
		[]byte("a\rb"),
		{0xC3},
		[]byte("a\uFEFFb"),
	}

	for _, input := range inputs {
		first := Validate(input)
		second := Validate(input)
		assert.Equal(t, first, second)
	}
}

func TestForbidden(t *testing.T) {
	assert.False(t, Forbidden('\n'))
	assert.False(t, Forbidden('\r'))
	assert.False(t, Forbidden('\t'))
	assert.False(t, Forbidden('a'))
	assert.False(t, Forbidden(' '))
	assert.False(t, Forbidden('é'))

	assert.True(t, Forbidden(0x00))
	assert.True(t, Forbidden(0x08))
	assert.True(t, Forbidden(0x0B))
	assert.True(t, Forbidden(0x0C))
	assert.True(t, Forbidden(0x0E))
	assert.True(t, Forbidden(0x1F))
	assert.True(t, Forbidden(0x7F))
	assert.True(t, Forbidden(0x85))
	assert.True(t, Forbidden(0x2028))
	assert.True(t, Forbidden(0x2029))
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "valid", Result{Valid: true}.String())
	assert.Equal(t, "bare-carriage-return at offset 4",
		Result{Offset: 4, Reason: ReasonBareCarriageReturn}.String())
	assert.Equal(t, "forbidden-code-point (U+0007) at offset 2",
		Result{Offset: 2, Reason: ReasonForbiddenCodePoint, CodePoint: 0x07}.String())
}
