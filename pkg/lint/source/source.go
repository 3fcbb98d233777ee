// Package source provides stateless textual pattern extractors for
// JavaScript/TypeScript files.
//
// The extractors deliberately avoid building a syntax tree: they answer
// the narrow questions the lint rules ask (is there a client directive,
// which identifiers are exported, which raw specifiers are imported) with
// line scanning and regular expressions. Multi-line or dynamically
// constructed forms are out of detection scope.
package source

import (
	"regexp"
	"strings"
)

var (
	exportRe = regexp.MustCompile(`export\s+(?:async\s+function|function|const|let|var|class)\s+([A-Za-z_$][A-Za-z0-9_$]*)`)

	importFromRe = regexp.MustCompile(`import\s+.*?\s+from\s+['"]([^'"]+)['"]`)
	requireRe    = regexp.MustCompile(`require\s*\(\s*['"]([^'"]+)['"]\s*\)`)
	exportFromRe = regexp.MustCompile(`export\s+.*?\s+from\s+['"]([^'"]+)['"]`)
)

// HasClientDirective reports whether the text contains a client directive
// marker ('use client' or "use client") on a line of its own. Both quote
// styles are accepted, with or without a trailing semicolon.
func HasClientDirective(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSuffix(strings.TrimSpace(line), ";")
		if trimmed == `'use client'` || trimmed == `"use client"` {
			return true
		}
	}
	return false
}

// ExportedNames returns the identifiers of named top-level exports
// detected by keyword-plus-identifier scanning: export const/let/var,
// export function, export async function and export class.
func ExportedNames(text string) []string {
	var names []string
	for _, m := range exportRe.FindAllStringSubmatch(text, -1) {
		names = append(names, m[1])
	}
	return names
}

// ExportLine returns the 1-based line of the first named export of ident,
// or 0 if not found.
func ExportLine(text, ident string) int {
	for i, line := range strings.Split(text, "\n") {
		for _, m := range exportRe.FindAllStringSubmatch(line, -1) {
			if m[1] == ident {
				return i + 1
			}
		}
	}
	return 0
}

// ImportSpecifiers returns the raw specifier strings referenced by
// import-from, require(...) and export-from forms, in order of
// appearance. Specifiers are returned verbatim; no alias or path
// resolution is attempted.
func ImportSpecifiers(text string) []string {
	var specs []string
	for _, m := range importFromRe.FindAllStringSubmatch(text, -1) {
		specs = append(specs, m[1])
	}
	for _, m := range requireRe.FindAllStringSubmatch(text, -1) {
		specs = append(specs, m[1])
	}
	for _, m := range exportFromRe.FindAllStringSubmatch(text, -1) {
		specs = append(specs, m[1])
	}
	return specs
}
