package rules

import (
	"github.com/yaklabco/srccheck/pkg/check"
	"github.com/yaklabco/srccheck/pkg/config"
)

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *check.Registry) {
	// Encoding rules
	registry.Register(NewMalformedUTF8Rule()) // SE001
	registry.Register(NewMisplacedBOMRule())  // SE005
	registry.Register(NewLeadingBOMRule())    // SE006

	// Newline rules
	registry.Register(NewBareCarriageReturnRule())   // SE002
	registry.Register(NewUnicodeLineSeparatorRule()) // SE004
	registry.Register(NewFinalNewlineRule())         // SE007

	// Control character rule
	registry.Register(NewForbiddenControlRule()) // SE003
}

// RegisterAliases registers alternate names for rules whose common
// shorthand differs from the canonical Name().
func RegisterAliases(registry *check.Registry) {
	// SE002: bare-carriage-return, often searched for as "crlf"
	registry.RegisterAlias("crlf", "SE002")

	// SE005/SE006: both reachable via "bom"
	registry.RegisterAlias("bom", "SE005")

	// SE007: final-newline, also known as an EOF newline check
	registry.RegisterAlias("eof-newline", "SE007")
}

// RuleInfos returns metadata for all built-in rules for template generation.
func RuleInfos() []config.RuleInfo {
	registry := check.NewRegistry()
	RegisterAll(registry)

	rules := registry.Rules()
	infos := make([]config.RuleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, config.RuleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Enabled:     rule.DefaultEnabled(),
			Severity:    rule.DefaultSeverity(),
			CanFix:      rule.CanFix(),
		})
	}
	return infos
}

// init registers all built-in rules with the default registry and wires
// rule metadata into config template generation.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(check.DefaultRegistry)
	RegisterAliases(check.DefaultRegistry)
	config.DefaultRuleInfoProvider = RuleInfos
}
