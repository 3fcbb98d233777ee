package lint

// RuleDef is a data-driven per-file rule definition.
// Rules are stateless - all context comes via the Check function
// parameters, which makes per-file evaluation safe to parallelize.
type RuleDef struct {
	ID          string    // Unique identifier, e.g. "server-side-exports"
	Name        string    // Human-readable name, e.g. "exports.server-side"
	Group       string    // Category, e.g. "exports", "structure", "naming"
	Description string    // Human-readable description
	Severity    Severity  // Default severity
	Check       CheckFunc // The check function
	ConfigKeys  []string  // Configuration keys this rule accepts
}

// CheckFunc analyzes a single file and returns diagnostics.
// The opts parameter contains rule-specific options from configuration;
// implementations read it through the option getters and fall back to
// their defaults for missing keys.
type CheckFunc func(f *File, opts map[string]any) []Diagnostic

// RuleInfo provides metadata about a rule for documentation/tooling.
type RuleInfo struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Group           string   `json:"group"`
	Description     string   `json:"description"`
	DefaultSeverity Severity `json:"default_severity"`
	ConfigKeys      []string `json:"config_keys,omitempty"`
	Type            string   `json:"type"` // "file" or "batch"
}
