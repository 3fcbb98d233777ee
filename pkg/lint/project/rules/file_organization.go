package rules

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/treelint/treelint/pkg/lint"
	"github.com/treelint/treelint/pkg/lint/project"
)

func init() {
	project.Register(project.RuleDef{
		ID:          "file-organization",
		Name:        "organization.checks",
		Group:       "organization",
		Description: "Configured file organization checks",
		Severity:    lint.SeverityWarn,
		ConfigKeys:  []string{"file_organization_checks"},
		Check:       checkFileOrganization,
	})
}

// checkFileOrganization evaluates every configured organization check, in
// configuration order, against the full file set. Diagnostics carry the
// rule id "file-organization:<check-id>".
func checkFileOrganization(ctx *project.Context) []lint.Diagnostic {
	checks := ctx.Config().Checks
	if len(checks) == 0 {
		return nil
	}

	var diagnostics []lint.Diagnostic
	for i := range checks {
		check := &checks[i]

		// Import-conditioned applicability is a property of the whole
		// tree, not of the selected file: the check applies when some
		// file matching the importer glob contains a specifier matching
		// the regex set. Resolving the import graph is deferred until a
		// check actually needs it.
		applies := true
		if check.WhenImportedBy != nil {
			applies = importerSatisfied(ctx, check.WhenImportedBy)
		}

		for _, f := range ctx.Files() {
			if !lint.MatchGlob(check.Match.Glob, f.RelPath) {
				continue
			}
			if matchesAnyGlob(check.Match.ExcludeGlob, f.RelPath) {
				continue
			}

			diagnostics = append(diagnostics, checkRequirements(check, f)...)

			if !applies || check.EnforceLocation == nil {
				continue
			}
			if isUnderAny(f.RelPath, check.EnforceLocation.MustBeUnder) {
				continue
			}
			msg := check.EnforceLocation.Message
			if msg == "" {
				msg = fmt.Sprintf("File must be located under one of: %s",
					strings.Join(check.EnforceLocation.MustBeUnder, ", "))
			}
			diagnostics = append(diagnostics, lint.Diagnostic{
				Severity: lint.SeverityWarn,
				Rule:     "file-organization:" + check.ID,
				Message:  msg,
				File:     f.RelPath,
			})
		}
	}
	return diagnostics
}

// checkRequirements evaluates sibling requirements for one selected file.
// Each unmet requirement yields one diagnostic.
func checkRequirements(check *lint.OrganizationCheck, f *lint.File) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for _, req := range check.Require {
		switch req.Kind {
		case lint.RequireSiblingExact:
			if hasExactSibling(f, req.Name) {
				continue
			}
			diagnostics = append(diagnostics, lint.Diagnostic{
				Severity: lint.SeverityWarn,
				Rule:     "file-organization:" + check.ID,
				Message:  fmt.Sprintf("Missing required companion file '%s' next to '%s'", req.Name, f.RelPath),
				File:     f.RelPath,
			})
		case lint.RequireSiblingGlob:
			if hasGlobSibling(f, req.Glob) {
				continue
			}
			diagnostics = append(diagnostics, lint.Diagnostic{
				Severity: lint.SeverityWarn,
				Rule:     "file-organization:" + check.ID,
				Message:  fmt.Sprintf("Missing required companion file matching '%s' next to '%s'", req.Glob, f.RelPath),
				File:     f.RelPath,
			})
		}
	}
	return diagnostics
}

// importerSatisfied reports whether any file matching the importer glob
// contains a raw import specifier matching one of the compiled patterns.
func importerSatisfied(ctx *project.Context, w *lint.WhenImportedBy) bool {
	for rel, specs := range ctx.Imports() {
		if !lint.MatchGlob(w.ImporterGlob, rel) {
			continue
		}
		for _, spec := range specs {
			for _, re := range w.Patterns() {
				if re.MatchString(spec) {
					return true
				}
			}
		}
	}
	return false
}

func matchesAnyGlob(patterns []string, relPath string) bool {
	for _, p := range patterns {
		if lint.MatchGlob(p, relPath) {
			return true
		}
	}
	return false
}

// hasExactSibling checks the filesystem, not the walked file set:
// companions like markdown user stories are outside the candidate
// extensions.
func hasExactSibling(f *lint.File, name string) bool {
	info, err := os.Stat(filepath.Join(f.Dir(), name))
	return err == nil && !info.IsDir()
}

func hasGlobSibling(f *lint.File, pattern string) bool {
	entries, err := os.ReadDir(f.Dir())
	if err != nil {
		return false
	}
	for _, e := range entries {
		if e.IsDir() || e.Name() == f.Name() {
			continue
		}
		if lint.MatchGlob(pattern, e.Name()) {
			return true
		}
	}
	return false
}

// isUnderAny reports whether a relative path begins under one of the
// allowed directory prefixes. Prefix slashes are tolerated.
func isUnderAny(relPath string, prefixes []string) bool {
	for _, prefix := range prefixes {
		p := strings.Trim(prefix, "/")
		if p == "" {
			continue
		}
		if relPath == p || strings.HasPrefix(relPath, p+"/") {
			return true
		}
	}
	return false
}
