package macros

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"github.com/yaklabco/srccheck/pkg/fsutil"
)

// manifestMode is the permission for written manifest files.
const manifestMode = 0o644

// ManifestEntry is the JSON representation of one macro definition.
type ManifestEntry struct {
	Name       string   `json:"name"`
	Parameters []string `json:"parameters"`
	Lines      int      `json:"lines"`
	Usages     int      `json:"usages"`
}

// BuildManifest converts definitions into manifest entries.
func BuildManifest(defs []Definition) []ManifestEntry {
	entries := make([]ManifestEntry, 0, len(defs))
	for _, def := range defs {
		params := def.Parameters
		if params == nil {
			params = []string{}
		}
		entries = append(entries, ManifestEntry{
			Name:       def.Name,
			Parameters: params,
			Lines:      def.Lines(),
			Usages:     def.Usages,
		})
	}
	return entries
}

// WriteManifest writes the manifest for defs to path atomically.
func WriteManifest(ctx context.Context, path string, defs []Definition) error {
	data, err := json.MarshalIndent(BuildManifest(defs), "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create manifest directory: %w", err)
		}
	}

	if err := fsutil.WriteAtomic(ctx, path, data, manifestMode); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}
	return nil
}
