// Package convert drives the conversion pipeline:
//
//	lexer -> extract/timeline -> resolve -> identities -> strip -> emit
//
// A Converter turns one DSM command file into YAML. Single conversions are
// synchronous and share no state; mission mode runs several of them
// concurrently over a directory and can keep watching it for changes.
package convert
