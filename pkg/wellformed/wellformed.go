// Package wellformed implements the source-text encoding rules srccheck
// enforces. The central entry point is Validate, a pure decision procedure
// over a byte slice: it decodes the input left to right and reports the
// first violation, if any, with its byte offset.
//
// The rules:
//   - the input must be well-formed UTF-8
//   - a U+FEFF byte-order mark is permitted only as the very first code point
//   - CR is permitted only when immediately followed by LF
//   - control characters other than LF, CR, and tab are forbidden, as are
//     the Unicode line separators U+0085, U+2028, and U+2029
//   - a missing final newline is a recommendation, never a violation
package wellformed

import "fmt"

// BOM is the byte-order mark, permitted only as the first code point.
const BOM = '\uFEFF'

// Reason classifies an encoding violation.
type Reason string

const (
	// ReasonMalformedUTF8 means a byte sequence does not decode to a valid
	// Unicode scalar value (invalid continuation byte, overlong encoding,
	// surrogate half, or out-of-range scalar).
	ReasonMalformedUTF8 Reason = "malformed-utf8"

	// ReasonBareCarriageReturn means a CR byte was not immediately
	// followed by LF.
	ReasonBareCarriageReturn Reason = "bare-carriage-return"

	// ReasonForbiddenCodePoint means a disallowed control character,
	// Unicode line separator, or non-initial byte-order mark was decoded.
	ReasonForbiddenCodePoint Reason = "forbidden-code-point"
)

// Result is the outcome of validating a byte stream. It is either valid,
// or invalid with the byte offset and reason of the first violation.
type Result struct {
	// Valid is true if the content satisfies every encoding rule.
	Valid bool

	// Offset is the zero-based byte index of the first violation.
	// Zero when Valid.
	Offset int

	// Reason classifies the first violation. Empty when Valid.
	Reason Reason

	// CodePoint is the offending scalar value when Reason is
	// ReasonForbiddenCodePoint. Zero otherwise.
	CodePoint rune
}

// String renders the result for diagnostics and logs.
func (r Result) String() string {
	if r.Valid {
		return "valid"
	}
	if r.Reason == ReasonForbiddenCodePoint {
		return fmt.Sprintf("%s (U+%04X) at offset %d", r.Reason, r.CodePoint, r.Offset)
	}
	return fmt.Sprintf("%s at offset %d", r.Reason, r.Offset)
}

// Forbidden reports whether a code point is disallowed anywhere in source
// text: ASCII control characters other than LF, CR, and tab, plus DEL and
// the non-ASCII Unicode line separators NEL, LS, and PS.
//
// CR is excluded here because its validity depends on the following byte;
// the byte-order mark is excluded because its validity depends on position.
func Forbidden(r rune) bool {
	switch {
	case r == '\n' || r == '\r' || r == '\t':
		return false
	case r < 0x20:
		return true
	case r == 0x7F:
		return true
	case r == 0x85 || r == 0x2028 || r == 0x2029:
		return true
	default:
		return false
	}
}
