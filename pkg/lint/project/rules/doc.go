// Package rules provides the built-in batch lint rules.
//
// Import the package for side effects to register the rules:
//
//	import _ "github.com/treelint/treelint/pkg/lint/project/rules"
package rules
