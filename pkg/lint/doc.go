// Package lint implements the rule evaluation engine for treelint.
//
// The engine walks a project tree, evaluates per-file rules against each
// candidate file and batch rules against the whole file set, and collects
// the results into a Collection with a stable ordering and a JSON contract
// that CI tooling depends on.
//
// Rules are defined as data (RuleDef) and registered from init() functions
// in the rules packages. Rule implementations never parse source code: they
// answer narrow yes/no questions with line scanning and regular expressions
// (see the source subpackage).
//
// The package defines types used across the system; per-file rule
// implementations live in pkg/lint/rules and the cross-file organization
// subsystem in pkg/lint/project.
package lint
