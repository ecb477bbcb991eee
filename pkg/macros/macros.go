// Package macros analyzes DEFINE-style assembler macro definitions.
//
// A definition has the form
//
//	DEFINE name(params) ,< body >
//
// where the parameter list is optional and the body runs to the matching
// closing angle bracket, with nested brackets balanced. The analyzer
// extracts every definition in a file and counts how often each macro name
// is used elsewhere in the same file.
package macros

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/srccheck/pkg/fsutil"
	"github.com/yaklabco/srccheck/pkg/wellformed"
)

// Definition is a single macro definition extracted from a source file.
type Definition struct {
	// Name is the macro name following the DEFINE keyword.
	Name string

	// Parameters are the comma-separated parameter names, if any.
	Parameters []string

	// Body is the text between the angle brackets, trailing newlines
	// stripped.
	Body string

	// Offset is the byte offset of the DEFINE keyword.
	Offset int

	// Usages is the number of times the name appears outside its own
	// definition.
	Usages int
}

// Lines returns the number of body lines, zero for an empty body.
func (d Definition) Lines() int {
	if d.Body == "" {
		return 0
	}
	n := 1
	for _, ch := range d.Body {
		if ch == '\n' {
			n++
		}
	}
	return n
}

// definePattern matches the header of a macro definition up to and
// including the opening angle bracket.
var definePattern = regexp.MustCompile(`DEFINE\s+([^,\s(]+)\s*(?:\(([^)]*)\))?\s*,?\s*<`)

// Analyze extracts macro definitions from content and counts usages.
// Content that violates the source encoding rules is refused.
func Analyze(content []byte) ([]Definition, error) {
	if result := wellformed.Validate(content); !result.Valid {
		return nil, fmt.Errorf("refusing malformed input: %s", result)
	}

	source := string(content)
	defs := scan(source)

	for i := range defs {
		defs[i].Usages = countUsages(source, defs[i].Name)
	}

	return defs, nil
}

// AnalyzeFile reads path and analyzes its macro definitions.
func AnalyzeFile(ctx context.Context, path string) ([]Definition, error) {
	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	defs, err := Analyze(content)
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", path, err)
	}
	return defs, nil
}

// scan finds every definition header and extracts its balanced body.
func scan(source string) []Definition {
	var defs []Definition

	for _, match := range definePattern.FindAllStringSubmatchIndex(source, -1) {
		name := source[match[2]:match[3]]

		var params []string
		if match[4] >= 0 {
			params = splitParams(source[match[4]:match[5]])
		}

		defs = append(defs, Definition{
			Name:       name,
			Parameters: params,
			Body:       scanBody(source, match[1]),
			Offset:     match[0],
		})
	}

	return defs
}

// scanBody reads from start (just past the opening bracket) until the
// matching close bracket, keeping nested brackets in the body. A body whose
// brackets never balance is truncated at end of input.
func scanBody(source string, start int) string {
	depth := 1
	var body []byte

	for i := start; i < len(source); i++ {
		ch := source[i]
		switch ch {
		case '<':
			depth++
			body = append(body, ch)
		case '>':
			depth--
			if depth == 0 {
				return strings.TrimRight(string(body), "\n")
			}
			body = append(body, ch)
		default:
			body = append(body, ch)
		}
	}

	return strings.TrimRight(string(body), "\n")
}

func splitParams(raw string) []string {
	var params []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			params = append(params, p)
		}
	}
	return params
}

// countUsages counts word-boundary occurrences of name in source, minus
// the definition occurrence itself.
func countUsages(source, name string) int {
	pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(name) + `\b`)
	if err != nil {
		return 0
	}
	count := len(pattern.FindAllStringIndex(source, -1))
	if count > 0 {
		count--
	}
	return count
}
