package rules

import (
	"fmt"

	"github.com/treelint/treelint/pkg/lint"
	"github.com/treelint/treelint/pkg/lint/source"
)

// serverOnlyExports are export names that only make sense in server
// components and data-fetching modules.
var serverOnlyExports = []string{
	"getServerSideProps",
	"getStaticProps",
	"getStaticPaths",
	"getInitialProps",
}

func init() {
	lint.Register(lint.RuleDef{
		ID:          "server-side-exports",
		Name:        "exports.server-side",
		Group:       "exports",
		Description: "Server-side export in a client component",
		Severity:    lint.SeverityWarn,
		Check:       checkServerSideExports,
	})
}

// checkServerSideExports flags files that carry a client directive yet
// export one of the server-only data-fetching identifiers. One diagnostic
// is emitted per matched name.
func checkServerSideExports(f *lint.File, _ map[string]any) []lint.Diagnostic {
	content, err := f.Content()
	if err != nil {
		return nil
	}

	if !source.HasClientDirective(content) {
		return nil
	}

	exported := make(map[string]bool)
	for _, name := range source.ExportedNames(content) {
		exported[name] = true
	}

	var diagnostics []lint.Diagnostic
	for _, name := range serverOnlyExports {
		if !exported[name] {
			continue
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			Severity: lint.SeverityWarn,
			Rule:     "server-side-exports",
			Message:  fmt.Sprintf("Server-side export '%s' found in client component", name),
			File:     f.RelPath,
			Line:     source.ExportLine(content, name),
		})
	}
	return diagnostics
}
