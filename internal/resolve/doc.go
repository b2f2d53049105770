// Package resolve replaces the integer references left by extraction with
// the records they name, and synthesizes the composite records that two
// vector pointing commands need.
//
// Resolution runs once per document. Configuration records are resolved
// first so that composites copy fully resolved primary vectors; sub-command
// data is attached last.
package resolve
