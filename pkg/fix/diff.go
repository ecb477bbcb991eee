package fix

import (
	"fmt"
	"strings"
)

// contextLines is the number of context lines to show around changes.
const contextLines = 3

// Diff represents a unified diff between original and modified content.
type Diff struct {
	// Path is the file path for the diff header.
	Path string

	// Hunks contains the diff hunks.
	Hunks []DiffHunk

	// Additions is the number of lines added.
	Additions int

	// Deletions is the number of lines deleted.
	Deletions int
}

// DiffHunk represents a single hunk in a unified diff.
type DiffHunk struct {
	OriginalStart int
	OriginalCount int
	ModifiedStart int
	ModifiedCount int
	Lines         []DiffLine
}

// DiffLine represents a single line in a diff hunk.
type DiffLine struct {
	Kind    DiffLineKind
	Content string
}

// DiffLineKind indicates the type of diff line.
type DiffLineKind int

const (
	DiffLineContext DiffLineKind = iota
	DiffLineAdd
	DiffLineRemove
)

// GenerateDiff creates a unified diff between original and modified content.
// Returns nil if there are no changes.
func GenerateDiff(path string, original, modified []byte) *Diff {
	origLines := splitLines(original)
	modLines := splitLines(modified)

	ops := diffOps(origLines, modLines)

	changed := false
	for _, op := range ops {
		if op.kind != DiffLineContext {
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}

	d := &Diff{
		Path:  path,
		Hunks: groupIntoHunks(ops),
	}
	for _, op := range ops {
		switch op.kind {
		case DiffLineAdd:
			d.Additions++
		case DiffLineRemove:
			d.Deletions++
		}
	}
	return d
}

// HasChanges returns true if the diff contains any changes.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// String returns the diff in unified diff format.
func (d *Diff) String() string {
	if d == nil || len(d.Hunks) == 0 {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var builder strings.Builder
	fmt.Fprintf(&builder, "--- a/%s\n", path)
	fmt.Fprintf(&builder, "+++ b/%s\n", path)

	for _, hunk := range d.Hunks {
		fmt.Fprintf(&builder, "@@ -%d,%d +%d,%d @@\n",
			hunk.OriginalStart, hunk.OriginalCount,
			hunk.ModifiedStart, hunk.ModifiedCount)

		for _, line := range hunk.Lines {
			switch line.Kind {
			case DiffLineContext:
				fmt.Fprintf(&builder, " %s\n", line.Content)
			case DiffLineAdd:
				fmt.Fprintf(&builder, "+%s\n", line.Content)
			case DiffLineRemove:
				fmt.Fprintf(&builder, "-%s\n", line.Content)
			}
		}
	}

	return builder.String()
}

// splitLines splits content into lines, dropping the trailing empty element
// produced by a final newline.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.Split(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

type diffOp struct {
	kind    DiffLineKind
	content string
	origIdx int // 0-based original line index (-1 for adds)
	modIdx  int // 0-based modified line index (-1 for removes)
}

// diffOps produces the full operation sequence via a line-based LCS.
func diffOps(orig, mod []string) []diffOp {
	// DP table of LCS lengths.
	table := make([][]int, len(orig)+1)
	for i := range table {
		table[i] = make([]int, len(mod)+1)
	}
	for i := len(orig) - 1; i >= 0; i-- {
		for j := len(mod) - 1; j >= 0; j-- {
			if orig[i] == mod[j] {
				table[i][j] = table[i+1][j+1] + 1
			} else {
				table[i][j] = max(table[i+1][j], table[i][j+1])
			}
		}
	}

	var ops []diffOp
	i, j := 0, 0
	for i < len(orig) && j < len(mod) {
		switch {
		case orig[i] == mod[j]:
			ops = append(ops, diffOp{kind: DiffLineContext, content: orig[i], origIdx: i, modIdx: j})
			i++
			j++
		case table[i+1][j] >= table[i][j+1]:
			ops = append(ops, diffOp{kind: DiffLineRemove, content: orig[i], origIdx: i, modIdx: -1})
			i++
		default:
			ops = append(ops, diffOp{kind: DiffLineAdd, content: mod[j], origIdx: -1, modIdx: j})
			j++
		}
	}
	for ; i < len(orig); i++ {
		ops = append(ops, diffOp{kind: DiffLineRemove, content: orig[i], origIdx: i, modIdx: -1})
	}
	for ; j < len(mod); j++ {
		ops = append(ops, diffOp{kind: DiffLineAdd, content: mod[j], origIdx: -1, modIdx: j})
	}

	return ops
}

// groupIntoHunks groups operations into hunks with surrounding context.
func groupIntoHunks(ops []diffOp) []DiffHunk {
	var hunks []DiffHunk

	idx := 0
	for idx < len(ops) {
		// Find the next change.
		for idx < len(ops) && ops[idx].kind == DiffLineContext {
			idx++
		}
		if idx >= len(ops) {
			break
		}

		// Extend backward for leading context.
		start := max(idx-contextLines, 0)

		// Extend forward, swallowing context gaps smaller than a full
		// context break.
		end := idx
		lastChange := idx
		for end < len(ops) {
			if ops[end].kind != DiffLineContext {
				lastChange = end
			} else if end-lastChange > contextLines*2 {
				break
			}
			end++
		}
		end = min(lastChange+contextLines+1, len(ops))

		hunks = append(hunks, buildHunk(ops[start:end]))
		idx = end
	}

	return hunks
}

func buildHunk(ops []diffOp) DiffHunk {
	hunk := DiffHunk{}

	for _, op := range ops {
		if hunk.OriginalStart == 0 && op.origIdx >= 0 {
			hunk.OriginalStart = op.origIdx + 1
		}
		if hunk.ModifiedStart == 0 && op.modIdx >= 0 {
			hunk.ModifiedStart = op.modIdx + 1
		}
		if op.origIdx >= 0 {
			hunk.OriginalCount++
		}
		if op.modIdx >= 0 {
			hunk.ModifiedCount++
		}
		hunk.Lines = append(hunk.Lines, DiffLine{Kind: op.kind, Content: op.content})
	}

	return hunk
}
