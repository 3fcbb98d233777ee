package rules

import (
	"fmt"
	"os"
	"sort"

	"github.com/treelint/treelint/pkg/lint"
)

// Built-in companion pattern sets. Custom categories from configuration
// extend these with their own pattern lists.
var (
	defaultTestPatterns  = []string{"*.test.ts", "*.test.tsx", "*.test.js", "*.test.jsx"}
	defaultStoryPatterns = []string{"*.stories.ts", "*.stories.tsx", "*.stories.js", "*.stories.jsx"}
)

// componentExts are the extensions treated as component-like for the
// companion check.
var componentExts = map[string]bool{"tsx": true, "jsx": true}

func init() {
	lint.Register(lint.RuleDef{
		ID:          "missing-companion-files",
		Name:        "structure.companion-files",
		Group:       "structure",
		Description: "Component is missing a required companion file",
		Severity:    lint.SeverityWarn,
		ConfigKeys:  []string{"require_test_files", "require_story_files", "companion_file_patterns"},
		Check:       checkCompanionFiles,
	})
}

type companionCategory struct {
	name     string
	patterns []string
}

// checkCompanionFiles verifies that a component file is accompanied by the
// configured companion categories. Each absent category yields exactly one
// diagnostic. Files that are themselves companions (they match a companion
// pattern of any required category) are not checked.
func checkCompanionFiles(f *lint.File, opts map[string]any) []lint.Diagnostic {
	if !componentExts[f.Ext] || filenameAllowlist[f.Stem()] {
		return nil
	}

	categories := requiredCategories(opts)
	if len(categories) == 0 {
		return nil
	}

	name := f.Name()
	for _, cat := range categories {
		if matchesAny(cat.patterns, name) {
			return nil
		}
	}

	siblings, err := siblingNames(f)
	if err != nil {
		return nil
	}

	var diagnostics []lint.Diagnostic
	for _, cat := range categories {
		found := false
		for _, sib := range siblings {
			if matchesAny(cat.patterns, sib) {
				found = true
				break
			}
		}
		if found {
			continue
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			Severity: lint.SeverityWarn,
			Rule:     "missing-companion-files",
			Message:  fmt.Sprintf("No %s companion file found for '%s'", cat.name, name),
			File:     f.RelPath,
		})
	}
	return diagnostics
}

// requiredCategories resolves the companion categories a file must have.
// The test and story categories are toggled by options and carry built-in
// defaults; pattern-map categories are required whenever their pattern
// list is non-empty.
func requiredCategories(opts map[string]any) []companionCategory {
	var categories []companionCategory

	if lint.GetBoolOption(opts, "require_test_files", false) {
		categories = append(categories, companionCategory{name: "test", patterns: defaultTestPatterns})
	}
	if lint.GetBoolOption(opts, "require_story_files", false) {
		categories = append(categories, companionCategory{name: "story", patterns: defaultStoryPatterns})
	}

	patterns := lint.GetMapOption(opts, "companion_file_patterns")
	if patterns == nil {
		return categories
	}

	if p := lint.GetStringSliceOption(patterns, "integration_tests", nil); len(p) > 0 {
		categories = append(categories, companionCategory{name: "integration test", patterns: p})
	}
	if p := lint.GetStringSliceOption(patterns, "page_user_scenarios", nil); len(p) > 0 {
		categories = append(categories, companionCategory{name: "page user scenario", patterns: p})
	}

	if custom := lint.GetMapOption(patterns, "custom"); custom != nil {
		keys := make([]string, 0, len(custom))
		for k := range custom {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if p := lint.GetStringSliceOption(custom, k, nil); len(p) > 0 {
				categories = append(categories, companionCategory{name: k, patterns: p})
			}
		}
	}
	return categories
}

func matchesAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if lint.MatchGlob(p, name) {
			return true
		}
	}
	return false
}

func siblingNames(f *lint.File) ([]string, error) {
	entries, err := os.ReadDir(f.Dir())
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || e.Name() == f.Name() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
