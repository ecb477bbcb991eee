// Package config defines core configuration types for srccheck.
// These types are pure data structures with no dependencies on config loaders.
package config

// Severity represents the severity level of a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled  *bool          `yaml:"enabled"`
	Severity *string        `yaml:"severity"`
	AutoFix  *bool          `yaml:"auto_fix"`
	Options  map[string]any `yaml:"options"`
}

// BackupsConfig controls backup behavior when fixing files.
type BackupsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Mode    string `yaml:"mode"` // "sidecar", "none"
}

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatSARIF   OutputFormat = "sarif"
	FormatDiff    OutputFormat = "diff"
	FormatSummary OutputFormat = "summary"
)

// RuleFormat controls how rule identifiers appear in output.
type RuleFormat string

const (
	RuleFormatName     RuleFormat = "name"     // "bare-carriage-return"
	RuleFormatID       RuleFormat = "id"       // "SE002"
	RuleFormatCombined RuleFormat = "combined" // "SE002/bare-carriage-return"
)

// Profile selects a named set of rule defaults.
type Profile string

const (
	// ProfileStandard enables the well-formedness rules with their built-in
	// defaults: a leading byte-order mark is tolerated and a missing final
	// newline is informational.
	ProfileStandard Profile = "standard"

	// ProfileStrict additionally rejects a leading byte-order mark and
	// raises the final-newline recommendation to a warning.
	ProfileStrict Profile = "strict"
)

// IsValid returns true if the profile is a known profile name.
func (p Profile) IsValid() bool {
	switch p {
	case ProfileStandard, ProfileStrict:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for srccheck.
type Config struct {
	// Profile selects the rule defaults ("standard" or "strict").
	Profile Profile `yaml:"profile"`

	// SeverityDefault is the default severity for rules that don't specify one.
	SeverityDefault string `yaml:"severity_default"`

	// Rules contains per-rule configuration keyed by rule ID.
	Rules map[string]RuleConfig `yaml:"rules"`

	// Extensions restricts checking to files with these extensions
	// (lowercase, with leading dot). Empty means every non-binary file.
	Extensions []string `yaml:"extensions"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore"`

	// SkipVendored skips files under vendored paths (node_modules, vendor, ...).
	SkipVendored bool `yaml:"skip_vendored"`

	// Backups configures backup behavior when fixing.
	Backups BackupsConfig `yaml:"backups"`

	// CLI-level options (not persisted to config files).

	// Fix enables auto-fixing of issues.
	Fix bool `yaml:"-"`

	// DryRun shows what would be fixed without making changes.
	DryRun bool `yaml:"-"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// RuleFormat controls how rule identifiers appear in output.
	RuleFormat RuleFormat `yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`

	// EnableRules contains rule IDs to explicitly enable.
	EnableRules []string `yaml:"-"`

	// DisableRules contains rule IDs to explicitly disable.
	DisableRules []string `yaml:"-"`

	// FixRules limits auto-fixing to specific rule IDs.
	FixRules []string `yaml:"-"`

	// NoBackups disables backup creation when fixing.
	NoBackups bool `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Profile:         ProfileStandard,
		SeverityDefault: string(SeverityError),
		Rules:           make(map[string]RuleConfig),
		SkipVendored:    true,
		Backups: BackupsConfig{
			Enabled: true,
			Mode:    "sidecar",
		},
		Format:     FormatText,
		RuleFormat: RuleFormatName,
		Jobs:       0, // 0 means use GOMAXPROCS
	}
}
