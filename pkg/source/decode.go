package source

import "unicode/utf8"

// CodePoint is a decoded Unicode scalar value with its byte span in the
// original content. Malformed byte sequences are surfaced as code points
// with Malformed set; their span covers the bytes the decoder consumed.
type CodePoint struct {
	// Rune is the decoded scalar value (utf8.RuneError when Malformed).
	Rune rune

	// Start is the byte index where the encoding begins (inclusive).
	Start int

	// End is the byte index just after the encoding (exclusive).
	End int

	// Malformed is true if the bytes at [Start, End) do not decode to a
	// valid Unicode scalar value.
	Malformed bool
}

// Span returns the byte range of this code point.
func (cp CodePoint) Span() SourceRange {
	return SourceRange{StartOffset: cp.Start, EndOffset: cp.End}
}

// Decoder iterates over the code points of a byte slice, left to right.
// It never skips bytes: malformed sequences are reported one byte at a time
// so that every byte of the input is covered by exactly one CodePoint.
type Decoder struct {
	content []byte
	offset  int
}

// NewDecoder creates a Decoder over content.
func NewDecoder(content []byte) *Decoder {
	return &Decoder{content: content}
}

// Offset returns the byte offset of the next code point to decode.
func (d *Decoder) Offset() int {
	return d.offset
}

// Next decodes the next code point. It returns false when the input is
// exhausted.
func (d *Decoder) Next() (CodePoint, bool) {
	if d.offset >= len(d.content) {
		return CodePoint{}, false
	}

	r, size := utf8.DecodeRune(d.content[d.offset:])
	cp := CodePoint{
		Rune:  r,
		Start: d.offset,
		End:   d.offset + size,
	}

	// DecodeRune signals malformed input (invalid continuation byte,
	// overlong encoding, surrogate half, out-of-range scalar, truncated
	// sequence) by returning RuneError with size 1. A genuine U+FFFD in
	// the input decodes with size 3.
	if r == utf8.RuneError && size == 1 {
		cp.Malformed = true
	}

	d.offset = cp.End
	return cp, true
}
