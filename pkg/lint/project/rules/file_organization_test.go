package rules_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treelint/treelint/pkg/lint"
	"github.com/treelint/treelint/pkg/lint/project"
	_ "github.com/treelint/treelint/pkg/lint/project/rules"
)

// buildProject writes a tree, walks it and returns the batch context.
func buildProject(t *testing.T, cfg *lint.Config, tree map[string]string) *project.Context {
	t.Helper()
	root := t.TempDir()
	for rel, content := range tree {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	files, _, err := lint.Walk(root, cfg, nil)
	require.NoError(t, err)
	return project.NewContext(root, files, cfg)
}

func analyzeOrganization(t *testing.T, cfg *lint.Config, tree map[string]string) []lint.Diagnostic {
	t.Helper()
	require.NoError(t, lint.CompileChecks(cfg.Checks))
	ctx := buildProject(t, cfg, tree)
	return project.NewAnalyzer(cfg, nil).Analyze(ctx)
}

func TestFileOrganization_SiblingExact(t *testing.T) {
	cfg := lint.NewConfig()
	cfg.Checks = []lint.OrganizationCheck{{
		ID:    "page-scenarios",
		Match: lint.MatchPattern{Glob: "app/**/page.tsx"},
		Require: []lint.Requirement{
			{Kind: lint.RequireSiblingExact, Name: "page.us.md"},
		},
	}}

	diags := analyzeOrganization(t, cfg, map[string]string{
		"app/page.tsx":             "",
		"app/dashboard/page.tsx":   "",
		"app/dashboard/page.us.md": "",
		"components/button.tsx":    "",
	})

	require.Len(t, diags, 1)
	assert.Equal(t, "file-organization:page-scenarios", diags[0].Rule)
	assert.Equal(t, "app/page.tsx", diags[0].File)
	assert.Equal(t, "Missing required companion file 'page.us.md' next to 'app/page.tsx'", diags[0].Message)
	assert.Equal(t, lint.SeverityWarn, diags[0].Severity)
}

func TestFileOrganization_SiblingGlob(t *testing.T) {
	cfg := lint.NewConfig()
	cfg.Checks = []lint.OrganizationCheck{{
		ID:    "component-stories",
		Match: lint.MatchPattern{Glob: "components/**/*.tsx"},
		Require: []lint.Requirement{
			{Kind: lint.RequireSiblingGlob, Glob: "*.stories.*"},
		},
	}}

	diags := analyzeOrganization(t, cfg, map[string]string{
		"components/button.tsx":         "",
		"components/button.stories.tsx": "",
		"components/card.tsx":           "",
	})

	// The story file itself also matches the check glob; a file never
	// satisfies its own requirement, so it is reported alongside card.
	files := make([]string, len(diags))
	for i, d := range diags {
		files[i] = d.File
	}
	assert.Contains(t, files, "components/card.tsx")
	assert.Contains(t, files, "components/button.stories.tsx")
	assert.NotContains(t, files, "components/button.tsx")
}

func TestFileOrganization_ExcludeGlob(t *testing.T) {
	cfg := lint.NewConfig()
	cfg.Checks = []lint.OrganizationCheck{{
		ID: "component-tests",
		Match: lint.MatchPattern{
			Glob:        "components/**/*.tsx",
			ExcludeGlob: []string{"**/*.stories.tsx", "**/*.test.tsx"},
		},
		Require: []lint.Requirement{
			{Kind: lint.RequireSiblingGlob, Glob: "*.test.tsx"},
		},
	}}

	diags := analyzeOrganization(t, cfg, map[string]string{
		"components/button.tsx":       "",
		"components/button.test.tsx":  "",
		"components/card.tsx":         "",
		"components/card.stories.tsx": "",
	})

	require.Len(t, diags, 1)
	assert.Equal(t, "components/card.tsx", diags[0].File)
}

func TestFileOrganization_WhenImportedBy(t *testing.T) {
	check := lint.OrganizationCheck{
		ID:    "hooks-location",
		Match: lint.MatchPattern{Glob: "**/use-*.ts"},
		WhenImportedBy: &lint.WhenImportedBy{
			ImporterGlob:      "app/**/*.tsx",
			ImportPathMatches: []string{`^@/hooks/`},
		},
		EnforceLocation: &lint.EnforceLocation{
			MustBeUnder: []string{"hooks"},
		},
	}

	t.Run("applies when an importer matches", func(t *testing.T) {
		cfg := lint.NewConfig()
		cfg.Checks = []lint.OrganizationCheck{check}

		diags := analyzeOrganization(t, cfg, map[string]string{
			"app/page.tsx":       "import { useUser } from '@/hooks/use-user'\n",
			"lib/use-user.ts":    "export const useUser = () => null\n",
			"hooks/use-theme.ts": "export const useTheme = () => null\n",
		})

		require.Len(t, diags, 1)
		assert.Equal(t, "file-organization:hooks-location", diags[0].Rule)
		assert.Equal(t, "lib/use-user.ts", diags[0].File)
		assert.Equal(t, "File must be located under one of: hooks", diags[0].Message)
	})

	t.Run("inapplicable when no importer matches", func(t *testing.T) {
		cfg := lint.NewConfig()
		cfg.Checks = []lint.OrganizationCheck{check}

		diags := analyzeOrganization(t, cfg, map[string]string{
			// Importer exists but its specifier does not match the regex.
			"app/page.tsx":    "import { useUser } from '../lib/use-user'\n",
			"lib/use-user.ts": "export const useUser = () => null\n",
		})
		assert.Empty(t, diags)
	})

	t.Run("raw specifiers only, aliases not resolved", func(t *testing.T) {
		cfg := lint.NewConfig()
		cfg.Checks = []lint.OrganizationCheck{check}

		diags := analyzeOrganization(t, cfg, map[string]string{
			// The alias points at lib/, not hooks/, but matching is
			// textual: the check still applies.
			"app/page.tsx":    "import { useUser } from '@/hooks/use-user'\n",
			"lib/use-user.ts": "",
		})
		require.Len(t, diags, 1)
		assert.Equal(t, "lib/use-user.ts", diags[0].File)
	})
}

func TestFileOrganization_EnforceLocationMessage(t *testing.T) {
	cfg := lint.NewConfig()
	cfg.Checks = []lint.OrganizationCheck{{
		ID:    "store-location",
		Match: lint.MatchPattern{Glob: "**/*.store.ts"},
		EnforceLocation: &lint.EnforceLocation{
			MustBeUnder: []string{"stores", "lib/state"},
			Message:     "Store modules belong under stores/ or lib/state/",
		},
	}}

	diags := analyzeOrganization(t, cfg, map[string]string{
		"components/cart.store.ts": "",
		"stores/user.store.ts":     "",
		"lib/state/theme.store.ts": "",
	})

	require.Len(t, diags, 1)
	assert.Equal(t, "components/cart.store.ts", diags[0].File)
	assert.Equal(t, "Store modules belong under stores/ or lib/state/", diags[0].Message)
}

func TestFileOrganization_SeverityOverride(t *testing.T) {
	cfg := lint.NewConfig().SetSeverity("file-organization", lint.SeverityError)
	cfg.Checks = []lint.OrganizationCheck{{
		ID:    "page-scenarios",
		Match: lint.MatchPattern{Glob: "app/**/page.tsx"},
		Require: []lint.Requirement{
			{Kind: lint.RequireSiblingExact, Name: "page.us.md"},
		},
	}}

	diags := analyzeOrganization(t, cfg, map[string]string{
		"app/page.tsx": "",
	})

	require.Len(t, diags, 1)
	assert.Equal(t, lint.SeverityError, diags[0].Severity)
}

func TestFileOrganization_Disabled(t *testing.T) {
	cfg := lint.NewConfig().Disable("file-organization")
	cfg.Checks = []lint.OrganizationCheck{{
		ID:    "page-scenarios",
		Match: lint.MatchPattern{Glob: "app/**/page.tsx"},
		Require: []lint.Requirement{
			{Kind: lint.RequireSiblingExact, Name: "page.us.md"},
		},
	}}

	diags := analyzeOrganization(t, cfg, map[string]string{
		"app/page.tsx": "",
	})
	assert.Empty(t, diags)
}

func TestBatchRegistry(t *testing.T) {
	rules := project.GetAll()
	require.Len(t, rules, 1)
	assert.Equal(t, "file-organization", rules[0].ID)
	assert.Equal(t, 1, project.Count())

	rule, ok := project.GetByID("file-organization")
	require.True(t, ok)
	assert.Equal(t, "organization", rule.Group)

	assert.Equal(t, rules, project.GetByGroup("organization"))
	assert.Empty(t, project.GetByGroup("nope"))
}

func TestContext_ImportsBuiltOnce(t *testing.T) {
	ctx := buildProject(t, lint.NewConfig(), map[string]string{
		"app/page.tsx": "import { x } from './x'\n",
		"app/x.ts":    "",
	})

	first := ctx.Imports()
	second := ctx.Imports()
	assert.Equal(t, []string{"./x"}, first["app/page.tsx"])
	assert.NotContains(t, first, "app/x.ts", "files without imports contribute no edges")
	// Same map, not a rebuild.
	assert.Equal(t, len(first), len(second))
}
