package check

import (
	"context"

	"github.com/yaklabco/srccheck/pkg/source"
)

// Parser turns raw file bytes into a FileSnapshot for rule execution.
//
// The check package defines this interface to follow the gobible principle
// of defining interfaces in the consumer package. The default implementation
// (SnapshotParser) builds the line index; alternatives can pre-process
// content (e.g., transcoding) before the rules see it.
//
// Implementations must be:
//   - deterministic for a given (path, content) tuple,
//   - safe for concurrent use by multiple goroutines,
//   - side-effect free (no I/O, no global state mutation).
type Parser interface {
	// Parse converts raw bytes into a fully-populated FileSnapshot.
	//
	// Parameters:
	//   - ctx: context for cancellation and timeout propagation.
	//   - path: logical file path (for diagnostics; must not be used for I/O).
	//   - content: raw bytes (must not be mutated by the implementation).
	//
	// The returned FileSnapshot must satisfy:
	//   - snapshot.Path == path
	//   - bytes.Equal(snapshot.Content, content)
	Parse(ctx context.Context, path string, content []byte) (*source.FileSnapshot, error)
}

// SnapshotParser is the default Parser. It builds the line index and
// performs no interpretation of the content.
type SnapshotParser struct{}

// NewSnapshotParser returns the default parser.
func NewSnapshotParser() *SnapshotParser {
	return &SnapshotParser{}
}

// Parse builds a FileSnapshot with a populated line index.
func (p *SnapshotParser) Parse(ctx context.Context, path string, content []byte) (*source.FileSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return source.NewFileSnapshot(path, content), nil
}
