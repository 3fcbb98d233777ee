package lint

import (
	"fmt"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
)

// Requirement kinds for organization checks.
const (
	RequireSiblingExact = "sibling_exact"
	RequireSiblingGlob  = "sibling_glob"
)

// OrganizationCheck is one configured file-organization check: file
// selection, sibling requirements, import-conditioned applicability and
// location enforcement. A check with neither requirements nor location
// enforcement is a no-op.
type OrganizationCheck struct {
	// ID is unique within a configuration.
	ID              string
	Description     string
	Match           MatchPattern
	Require         []Requirement
	WhenImportedBy  *WhenImportedBy
	EnforceLocation *EnforceLocation
}

// MatchPattern selects the files a check applies to.
type MatchPattern struct {
	Glob        string
	ExcludeGlob []string
}

// Requirement demands a co-located companion file: an exact name for
// sibling_exact, or at least one match for sibling_glob.
type Requirement struct {
	Kind string
	Name string // sibling_exact
	Glob string // sibling_glob
}

// WhenImportedBy restricts a check to files that are referenced, by raw
// import specifier, from files matching ImporterGlob. Specifiers are
// matched as literal text against the regex set; bundler path aliases are
// never resolved to filesystem paths.
type WhenImportedBy struct {
	ImporterGlob      string
	ImportPathMatches []string

	patterns []*regexp.Regexp
}

// Patterns returns the compiled import-path regexes.
func (w *WhenImportedBy) Patterns() []*regexp.Regexp {
	return w.patterns
}

// EnforceLocation demands that a file's directory begins with one of the
// allowed prefixes.
type EnforceLocation struct {
	MustBeUnder []string
	Message     string
}

// CompileChecks validates a configured check list and compiles its
// patterns in place. Any invalid glob or regex, a duplicate id, or a
// malformed requirement is a configuration defect: the error names the
// offending check and pattern, and the whole run must abort before any
// file evaluation.
func CompileChecks(checks []OrganizationCheck) error {
	seen := make(map[string]bool, len(checks))
	for i := range checks {
		check := &checks[i]
		if check.ID == "" {
			return fmt.Errorf("organization check #%d: missing id", i+1)
		}
		if seen[check.ID] {
			return fmt.Errorf("organization check %q: duplicate id", check.ID)
		}
		seen[check.ID] = true

		if check.Match.Glob == "" {
			return fmt.Errorf("organization check %q: missing match.glob", check.ID)
		}
		if !doublestar.ValidatePattern(check.Match.Glob) {
			return fmt.Errorf("organization check %q: invalid glob %q", check.ID, check.Match.Glob)
		}
		for _, g := range check.Match.ExcludeGlob {
			if !doublestar.ValidatePattern(g) {
				return fmt.Errorf("organization check %q: invalid exclude glob %q", check.ID, g)
			}
		}

		for _, req := range check.Require {
			switch req.Kind {
			case RequireSiblingExact:
				if req.Name == "" {
					return fmt.Errorf("organization check %q: sibling_exact requires a name", check.ID)
				}
			case RequireSiblingGlob:
				if req.Glob == "" {
					return fmt.Errorf("organization check %q: sibling_glob requires a glob", check.ID)
				}
				if !doublestar.ValidatePattern(req.Glob) {
					return fmt.Errorf("organization check %q: invalid sibling glob %q", check.ID, req.Glob)
				}
			default:
				return fmt.Errorf("organization check %q: unknown requirement kind %q", check.ID, req.Kind)
			}
		}

		if w := check.WhenImportedBy; w != nil {
			if w.ImporterGlob == "" {
				return fmt.Errorf("organization check %q: when_imported_by requires an importer_glob", check.ID)
			}
			if !doublestar.ValidatePattern(w.ImporterGlob) {
				return fmt.Errorf("organization check %q: invalid importer glob %q", check.ID, w.ImporterGlob)
			}
			w.patterns = w.patterns[:0]
			for _, p := range w.ImportPathMatches {
				re, err := regexp.Compile(p)
				if err != nil {
					return fmt.Errorf("organization check %q: invalid import path pattern %q: %w", check.ID, p, err)
				}
				w.patterns = append(w.patterns, re)
			}
		}
	}
	return nil
}

// MatchGlob reports whether a slash-separated relative path matches a
// doublestar glob pattern. Invalid patterns never match; they are rejected
// earlier by CompileChecks.
func MatchGlob(pattern, relPath string) bool {
	ok, err := doublestar.Match(pattern, relPath)
	return err == nil && ok
}
