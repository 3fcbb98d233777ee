package config

// Config is the raw, file-shaped configuration before compilation.
// Omitted sections fall back to defaults; Compile turns the raw form
// into a resolved lint.Config and rejects defects.
type Config struct {
	Rules   RulesConfig `koanf:"rules"`
	Format  string      `koanf:"format"`
	Verbose bool        `koanf:"verbose"`
}

// RulesConfig holds per-rule configuration, keyed the way config files
// spell the rules.
type RulesConfig struct {
	ServerSideExports        RuleConfig `koanf:"server_side_exports"`
	ComponentNestingDepth    RuleConfig `koanf:"component_nesting_depth"`
	FilenameStyleConsistency RuleConfig `koanf:"filename_style_consistency"`
	MissingCompanionFiles    RuleConfig `koanf:"missing_companion_files"`
	FileOrganization         RuleConfig `koanf:"file_organization"`
}

// RuleConfig is one rule's raw configuration. A nil Enabled means
// enabled; an empty Severity means the rule's default.
type RuleConfig struct {
	Enabled  *bool         `koanf:"enabled"`
	Severity string        `koanf:"severity"`
	Options  OptionsConfig `koanf:"options"`
}

// OptionsConfig is the union of all rule options. Each rule reads only
// the keys it declares; partially specified options are normal.
type OptionsConfig struct {
	MaxNestingDepth        *int                `koanf:"max_nesting_depth"`
	FilenameStyle          string              `koanf:"filename_style"`
	RequireTestFiles       bool                `koanf:"require_test_files"`
	RequireStoryFiles      bool                `koanf:"require_story_files"`
	CompanionFilePatterns  CompanionPatterns   `koanf:"companion_file_patterns"`
	FileOrganizationChecks []OrganizationCheck `koanf:"file_organization_checks"`
}

// CompanionPatterns configures companion file categories beyond the
// built-in test and story patterns.
type CompanionPatterns struct {
	IntegrationTests  []string            `koanf:"integration_tests"`
	PageUserScenarios []string            `koanf:"page_user_scenarios"`
	Custom            map[string][]string `koanf:"custom"`
}

// OrganizationCheck is the raw form of one file-organization check.
type OrganizationCheck struct {
	ID              string           `koanf:"id"`
	Description     string           `koanf:"description"`
	Match           MatchPattern     `koanf:"match"`
	Require         []Requirement    `koanf:"require"`
	WhenImportedBy  *WhenImportedBy  `koanf:"when_imported_by"`
	EnforceLocation *EnforceLocation `koanf:"enforce_location"`
}

// MatchPattern selects files by glob, minus exclusions.
type MatchPattern struct {
	Glob        string   `koanf:"glob"`
	ExcludeGlob []string `koanf:"exclude_glob"`
}

// Requirement is a tagged companion requirement: kind sibling_exact
// carries a name, kind sibling_glob carries a glob.
type Requirement struct {
	Kind string `koanf:"kind"`
	Name string `koanf:"name"`
	Glob string `koanf:"glob"`
}

// WhenImportedBy conditions a check on the import graph.
type WhenImportedBy struct {
	ImporterGlob      string   `koanf:"importer_glob"`
	ImportPathMatches []string `koanf:"import_path_matches"`
}

// EnforceLocation restricts where matched files may live.
type EnforceLocation struct {
	MustBeUnder []string `koanf:"must_be_under"`
	Message     string   `koanf:"message"`
}
