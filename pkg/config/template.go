package config

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-json"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes all rules with their documentation.
	// If false, generates a minimal template.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string
}

// RuleInfo contains rule metadata for template generation.
type RuleInfo struct {
	ID          string
	Name        string
	Description string
	Enabled     bool
	Severity    Severity
	CanFix      bool
}

// RuleInfoProvider is a function that returns rule information.
// This decouples template generation from the check package to avoid
// circular imports.
type RuleInfoProvider func() []RuleInfo

// DefaultRuleInfoProvider is set by the check package during init.
//
//nolint:gochecknoglobals // Intentional extension point for rule info.
var DefaultRuleInfoProvider RuleInfoProvider

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		return generateJSONTemplate(opts)
	}
	if opts.Full {
		return generateFullTemplate()
	}
	return generateMinimalTemplate()
}

func generateMinimalTemplate() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`# srccheck configuration
# See: https://github.com/yaklabco/srccheck

# Rule profile: standard or strict
profile: standard

# Default severity for all rules: error, warning, or info
# severity_default: error

# Restrict checking to these extensions (empty = every non-binary file)
# extensions: [".zig", ".go", ".c"]

# Glob patterns to skip
# ignore:
#   - "testdata/**"

# Skip vendored paths such as node_modules and vendor
skip_vendored: true

# Per-rule overrides, keyed by rule ID or name
# rules:
#   final-newline:
#     severity: warning
#   leading-byte-order-mark:
#     enabled: true

# Backups when fixing files
backups:
  enabled: true
  mode: sidecar
`)

	return buf.Bytes(), nil
}

func generateFullTemplate() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# srccheck configuration (full template)\n")
	buf.WriteString("# Every built-in rule is listed with its defaults.\n\n")
	buf.WriteString("profile: standard\nskip_vendored: true\n\nrules:\n")

	for _, info := range sortedRuleInfos() {
		desc := strings.TrimSpace(info.Description)
		if desc != "" {
			buf.WriteString(fmt.Sprintf("  # %s\n", desc))
		}
		fixable := "not fixable"
		if info.CanFix {
			fixable = "fixable"
		}
		buf.WriteString(fmt.Sprintf("  # %s (%s, %s)\n", info.ID, info.Severity, fixable))
		buf.WriteString(fmt.Sprintf("  %s:\n", info.Name))
		buf.WriteString(fmt.Sprintf("    enabled: %t\n", info.Enabled))
		buf.WriteString(fmt.Sprintf("    severity: %s\n\n", info.Severity))
	}

	buf.WriteString("backups:\n  enabled: true\n  mode: sidecar\n")

	return buf.Bytes(), nil
}

func generateJSONTemplate(opts TemplateOptions) ([]byte, error) {
	doc := map[string]any{
		"profile":       string(ProfileStandard),
		"skip_vendored": true,
		"backups": map[string]any{
			"enabled": true,
			"mode":    "sidecar",
		},
	}

	if opts.Full {
		rules := make(map[string]any)
		for _, info := range sortedRuleInfos() {
			rules[info.Name] = map[string]any{
				"enabled":  info.Enabled,
				"severity": string(info.Severity),
			}
		}
		doc["rules"] = rules
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode template: %w", err)
	}
	return append(out, '\n'), nil
}

func sortedRuleInfos() []RuleInfo {
	if DefaultRuleInfoProvider == nil {
		return nil
	}
	infos := DefaultRuleInfoProvider()
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}
