package wellformed

import "github.com/yaklabco/srccheck/pkg/source"

// Validate checks content against the encoding rules and reports the first
// violation in stream order. It is a pure function of the byte slice: no
// state is kept between calls and repeated calls yield identical results,
// so it is safe to call concurrently on independent inputs.
//
// Validation short-circuits at the lowest-offset violation; it does not
// attempt to collect every violation in one pass.
func Validate(content []byte) Result {
	dec := source.NewDecoder(content)

	for {
		cp, ok := dec.Next()
		if !ok {
			return Result{Valid: true}
		}

		if cp.Malformed {
			return Result{Offset: cp.Start, Reason: ReasonMalformedUTF8}
		}

		switch {
		case cp.Rune == '\r':
			// CR is only permitted as part of a CRLF pair.
			if cp.End >= len(content) || content[cp.End] != '\n' {
				return Result{Offset: cp.Start, Reason: ReasonBareCarriageReturn}
			}

		case cp.Rune == BOM:
			// Skipped silently only as the very first code point.
			if cp.Start != 0 {
				return Result{
					Offset:    cp.Start,
					Reason:    ReasonForbiddenCodePoint,
					CodePoint: BOM,
				}
			}

		case Forbidden(cp.Rune):
			return Result{
				Offset:    cp.Start,
				Reason:    ReasonForbiddenCodePoint,
				CodePoint: cp.Rune,
			}
		}
	}
}
