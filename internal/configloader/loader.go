// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, hierarchical merging,
// environment variable support, and validation.
package configloader

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/srccheck/pkg/check"
	"github.com/yaklabco/srccheck/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// skipVendoredProbe captures the skip_vendored key from a config file.
// SkipVendored defaults to true, so the zero value of a plain bool cannot
// distinguish "unset" from "explicitly false" after unmarshaling. Each
// loaded file is probed separately and the last explicit value wins.
type skipVendoredProbe struct {
	SkipVendored *bool `yaml:"skip_vendored"`
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (SRCCHECK_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.srccheck.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/srccheck/config.yaml)
//  6. System config (/etc/srccheck/config.yaml)
//  7. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{
		Paths: &ConfigPaths{},
	}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	// Start with defaults
	cfg := config.NewConfig()

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	result.Paths = paths

	if opts.ExplicitPath != "" {
		result.Paths.Explicit = opts.ExplicitPath
	}

	// Last explicit skip_vendored value across loaded files
	var skipVendored *bool

	loadAndMerge := func(path, label string) error {
		fileCfg, probe, loadErr := loadConfigFile(path)
		if loadErr != nil {
			return fmt.Errorf("load %s config: %w", label, loadErr)
		}
		cfg = merge(cfg, fileCfg)
		if probe != nil {
			skipVendored = probe
		}
		result.LoadedFrom = append(result.LoadedFrom, path)
		return nil
	}

	// Merge in order, lowest to highest precedence

	if !opts.IgnoreSystemConfig && paths.System != "" {
		if err := loadAndMerge(paths.System, "system"); err != nil {
			return nil, err
		}
	}

	if !opts.IgnoreUserConfig && paths.User != "" {
		if err := loadAndMerge(paths.User, "user"); err != nil {
			return nil, err
		}
	}

	if !opts.IgnoreProjectConfig && paths.Project != "" {
		if err := loadAndMerge(paths.Project, "project"); err != nil {
			return nil, err
		}
	}

	if opts.ExplicitPath != "" {
		if err := loadAndMerge(opts.ExplicitPath, "explicit"); err != nil {
			return nil, err
		}
	}

	// Apply the probed file-level value before env and CLI so those can
	// still override it
	if skipVendored != nil {
		cfg.SkipVendored = *skipVendored
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	// Normalize rule keys to canonical IDs so config files may use rule
	// names like "bare-carriage-return"
	normalizeRuleKeys(cfg, check.DefaultRegistry, result)

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}

	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Message)
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile loads a configuration from a YAML file. The second return
// value reports whether the file explicitly set skip_vendored.
func loadConfigFile(path string) (*config.Config, *bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}

	cfg := &config.Config{}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, nil, fmt.Errorf("parse YAML: %w", err)
	}

	if cfg.Rules == nil {
		cfg.Rules = make(map[string]config.RuleConfig)
	}

	var probe skipVendoredProbe
	if err := yaml.Unmarshal(content, &probe); err != nil {
		return nil, nil, fmt.Errorf("parse YAML: %w", err)
	}

	return cfg, probe.SkipVendored, nil
}

// normalizeRuleKeys converts rule names to canonical IDs in the config.
// If a rule is specified by both ID and name, warns and uses the last
// value encountered.
func normalizeRuleKeys(cfg *config.Config, registry *check.Registry, result *LoadResult) {
	if len(cfg.Rules) == 0 {
		return
	}

	normalized := make(map[string]config.RuleConfig, len(cfg.Rules))
	seenIDs := make(map[string]string) // canonical ID -> original key

	for key, ruleCfg := range cfg.Rules {
		canonicalID, _, found := registry.Resolve(key)
		if !found {
			// Unknown rule, keep as-is so validation can warn about it
			normalized[key] = ruleCfg
			continue
		}

		if originalKey, exists := seenIDs[canonicalID]; exists {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("duplicate rule configuration: %q and %q both refer to %s; using last value",
					originalKey, key, canonicalID))
		}

		seenIDs[canonicalID] = key
		normalized[canonicalID] = ruleCfg
	}

	cfg.Rules = normalized
}
