package config

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/treelint/treelint/pkg/lint"
	"github.com/treelint/treelint/pkg/lint/rules"
)

// Compile resolves the raw configuration into a lint.Config, validating
// severities, option values and organization checks. Any defect aborts
// the run before file evaluation starts.
func (c *Config) Compile() (*lint.Config, error) {
	cfg := lint.NewConfig()

	entries := []struct {
		id string
		rc RuleConfig
	}{
		{"server-side-exports", c.Rules.ServerSideExports},
		{"component-nesting-depth", c.Rules.ComponentNestingDepth},
		{"filename-style-consistency", c.Rules.FilenameStyleConsistency},
		{"missing-companion-files", c.Rules.MissingCompanionFiles},
		{"file-organization", c.Rules.FileOrganization},
	}
	for _, e := range entries {
		if e.rc.Enabled != nil && !*e.rc.Enabled {
			cfg.Disable(e.id)
		}
		if e.rc.Severity != "" {
			sev, ok := lint.ParseSeverity(e.rc.Severity)
			if !ok {
				return nil, fmt.Errorf("rule %s: invalid severity %q", e.id, e.rc.Severity)
			}
			cfg.SetSeverity(e.id, sev)
		}
	}

	if err := c.compileNestingOptions(cfg); err != nil {
		return nil, err
	}
	if err := c.compileFilenameOptions(cfg); err != nil {
		return nil, err
	}
	if err := c.compileCompanionOptions(cfg); err != nil {
		return nil, err
	}

	checks := make([]lint.OrganizationCheck, 0, len(c.Rules.FileOrganization.Options.FileOrganizationChecks))
	for _, raw := range c.Rules.FileOrganization.Options.FileOrganizationChecks {
		checks = append(checks, raw.toCheck())
	}
	if err := lint.CompileChecks(checks); err != nil {
		return nil, err
	}
	cfg.Checks = checks

	return cfg, nil
}

func (c *Config) compileNestingOptions(cfg *lint.Config) error {
	opts := c.Rules.ComponentNestingDepth.Options
	if opts.MaxNestingDepth == nil {
		return nil
	}
	if *opts.MaxNestingDepth < 1 {
		return fmt.Errorf("rule component-nesting-depth: max_nesting_depth must be at least 1, got %d", *opts.MaxNestingDepth)
	}
	cfg.SetRuleOptions("component-nesting-depth", map[string]any{
		"max_nesting_depth": *opts.MaxNestingDepth,
	})
	return nil
}

func (c *Config) compileFilenameOptions(cfg *lint.Config) error {
	opts := c.Rules.FilenameStyleConsistency.Options
	if opts.FilenameStyle == "" {
		return nil
	}
	if !rules.ValidFilenameStyle(opts.FilenameStyle) {
		return fmt.Errorf("rule filename-style-consistency: invalid filename_style %q", opts.FilenameStyle)
	}
	cfg.SetRuleOptions("filename-style-consistency", map[string]any{
		"filename_style": opts.FilenameStyle,
	})
	return nil
}

func (c *Config) compileCompanionOptions(cfg *lint.Config) error {
	opts := c.Rules.MissingCompanionFiles.Options

	ruleOpts := make(map[string]any)
	if opts.RequireTestFiles {
		ruleOpts["require_test_files"] = true
	}
	if opts.RequireStoryFiles {
		ruleOpts["require_story_files"] = true
	}

	patterns := make(map[string]any)
	cp := opts.CompanionFilePatterns
	if err := validatePatterns("integration_tests", cp.IntegrationTests); err != nil {
		return err
	}
	if len(cp.IntegrationTests) > 0 {
		patterns["integration_tests"] = cp.IntegrationTests
	}
	if err := validatePatterns("page_user_scenarios", cp.PageUserScenarios); err != nil {
		return err
	}
	if len(cp.PageUserScenarios) > 0 {
		patterns["page_user_scenarios"] = cp.PageUserScenarios
	}
	if len(cp.Custom) > 0 {
		custom := make(map[string]any, len(cp.Custom))
		for name, pats := range cp.Custom {
			if err := validatePatterns(name, pats); err != nil {
				return err
			}
			custom[name] = pats
		}
		patterns["custom"] = custom
	}
	if len(patterns) > 0 {
		ruleOpts["companion_file_patterns"] = patterns
	}

	if len(ruleOpts) > 0 {
		cfg.SetRuleOptions("missing-companion-files", ruleOpts)
	}
	return nil
}

func validatePatterns(category string, patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("rule missing-companion-files: invalid pattern %q in category %s", p, category)
		}
	}
	return nil
}

func (oc OrganizationCheck) toCheck() lint.OrganizationCheck {
	check := lint.OrganizationCheck{
		ID:          oc.ID,
		Description: oc.Description,
		Match: lint.MatchPattern{
			Glob:        oc.Match.Glob,
			ExcludeGlob: oc.Match.ExcludeGlob,
		},
	}
	for _, req := range oc.Require {
		check.Require = append(check.Require, lint.Requirement{
			Kind: req.Kind,
			Name: req.Name,
			Glob: req.Glob,
		})
	}
	if oc.WhenImportedBy != nil {
		check.WhenImportedBy = &lint.WhenImportedBy{
			ImporterGlob:      oc.WhenImportedBy.ImporterGlob,
			ImportPathMatches: oc.WhenImportedBy.ImportPathMatches,
		}
	}
	if oc.EnforceLocation != nil {
		check.EnforceLocation = &lint.EnforceLocation{
			MustBeUnder: oc.EnforceLocation.MustBeUnder,
			Message:     oc.EnforceLocation.Message,
		}
	}
	return check
}
