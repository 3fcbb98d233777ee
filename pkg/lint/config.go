package lint

// DefaultIgnoreDirs are directory names whose subtrees are never walked:
// dependency, build, version-control and cache directories.
var DefaultIgnoreDirs = []string{
	"node_modules",
	".next",
	".git",
	"dist",
	"build",
	"coverage",
	"out",
	".turbo",
}

// DefaultExtensions are the candidate file extensions, without dots.
var DefaultExtensions = []string{"js", "jsx", "ts", "tsx", "mjs", "cjs"}

// Config is the fully-resolved configuration for a run.
//
// It is constructed once from already-parsed external input and treated as
// immutable afterwards; repeated or concurrent runs in the same process
// never share mutable state through it.
type Config struct {
	// Disabled contains rule IDs to skip.
	Disabled map[string]bool

	// SeverityOverrides changes the default severity of rules.
	SeverityOverrides map[string]Severity

	// RuleOptions contains rule-specific options, keyed by rule ID.
	RuleOptions map[string]map[string]any

	// Checks are the compiled organization checks for the
	// file-organization batch rule, in configuration order.
	Checks []OrganizationCheck

	// IgnoreDirs are directory names excluded from traversal.
	IgnoreDirs []string

	// Extensions are the candidate file extensions, without dots.
	Extensions []string
}

// NewConfig creates a default configuration with all rules enabled.
func NewConfig() *Config {
	return &Config{
		Disabled:          make(map[string]bool),
		SeverityOverrides: make(map[string]Severity),
		RuleOptions:       make(map[string]map[string]any),
		IgnoreDirs:        DefaultIgnoreDirs,
		Extensions:        DefaultExtensions,
	}
}

// IsDisabled returns true if the rule should be skipped.
func (c *Config) IsDisabled(ruleID string) bool {
	if c == nil {
		return false
	}
	return c.Disabled[ruleID]
}

// GetSeverity returns the severity for a rule, applying any override.
func (c *Config) GetSeverity(ruleID string, defaultSeverity Severity) Severity {
	if c != nil {
		if sev, ok := c.SeverityOverrides[ruleID]; ok {
			return sev
		}
	}
	return defaultSeverity
}

// GetRuleOptions returns the options for a rule, or nil if none are set.
func (c *Config) GetRuleOptions(ruleID string) map[string]any {
	if c == nil {
		return nil
	}
	return c.RuleOptions[ruleID]
}

// Disable disables a rule by ID.
func (c *Config) Disable(ruleID string) *Config {
	c.Disabled[ruleID] = true
	return c
}

// SetSeverity overrides the severity for a rule.
func (c *Config) SetSeverity(ruleID string, severity Severity) *Config {
	c.SeverityOverrides[ruleID] = severity
	return c
}

// SetRuleOptions sets rule-specific options.
func (c *Config) SetRuleOptions(ruleID string, opts map[string]any) *Config {
	c.RuleOptions[ruleID] = opts
	return c
}

// IsIgnoredDir reports whether a directory name is in the ignore set.
func (c *Config) IsIgnoredDir(name string) bool {
	dirs := DefaultIgnoreDirs
	if c != nil && c.IgnoreDirs != nil {
		dirs = c.IgnoreDirs
	}
	for _, d := range dirs {
		if d == name {
			return true
		}
	}
	return false
}

// IsCandidateExt reports whether an extension (without dot) is a candidate
// for evaluation.
func (c *Config) IsCandidateExt(ext string) bool {
	exts := DefaultExtensions
	if c != nil && c.Extensions != nil {
		exts = c.Extensions
	}
	for _, e := range exts {
		if e == ext {
			return true
		}
	}
	return false
}
