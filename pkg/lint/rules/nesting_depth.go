package rules

import (
	"fmt"
	"strings"

	"github.com/treelint/treelint/pkg/lint"
)

// DefaultMaxNestingDepth is the default component nesting limit.
const DefaultMaxNestingDepth = 3

// nestingRoots are the route-root segments the rule applies under.
var nestingRoots = []string{"app", "pages"}

func init() {
	lint.Register(lint.RuleDef{
		ID:          "component-nesting-depth",
		Name:        "structure.nesting-depth",
		Group:       "structure",
		Description: "Component nested too deep under a route root",
		Severity:    lint.SeverityWarn,
		ConfigKeys:  []string{"max_nesting_depth"},
		Check:       checkNestingDepth,
	})
}

// checkNestingDepth applies to files whose relative path begins under one
// of the route roots. Depth counts the path segments below the root
// segment, filename inclusive: app/components/Button.tsx has depth 2.
func checkNestingDepth(f *lint.File, opts map[string]any) []lint.Diagnostic {
	depth, ok := nestingDepth(f.RelPath)
	if !ok {
		return nil
	}

	maxDepth := lint.GetIntOption(opts, "max_nesting_depth", DefaultMaxNestingDepth)
	if depth <= maxDepth {
		return nil
	}

	return []lint.Diagnostic{{
		Severity: lint.SeverityWarn,
		Rule:     "component-nesting-depth",
		Message:  fmt.Sprintf("Component nesting depth %d exceeds maximum of %d", depth, maxDepth),
		File:     f.RelPath,
	}}
}

func nestingDepth(relPath string) (int, bool) {
	segments := strings.Split(relPath, "/")
	if len(segments) < 2 {
		return 0, false
	}
	for _, root := range nestingRoots {
		if segments[0] == root {
			return len(segments) - 1, true
		}
	}
	return 0, false
}
