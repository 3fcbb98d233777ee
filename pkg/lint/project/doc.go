// Package project provides batch lint rules evaluated once over the whole
// file set, after all per-file rules have run.
//
// Batch rules receive a Context holding the ordered file set and, on
// demand, the import graph: a build-once, read-only mapping from each file
// to the raw import specifiers it contains. The graph is only built the
// first time a rule asks for it.
package project
