// Package rules provides the built-in per-file lint rules.
//
// Each rule is registered from an init() function and evaluated
// independently against one file's path and content:
//
//   - server-side-exports: server-only exports in client components
//   - component-nesting-depth: components nested too deep under app/ or pages/
//   - filename-style-consistency: filename casing style mismatch
//   - missing-companion-files: required test/story companions absent
//
// Import the package for side effects to register the rules:
//
//	import _ "github.com/treelint/treelint/pkg/lint/rules"
package rules
