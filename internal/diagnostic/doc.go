// Package diagnostic provides structured errors and warnings for the
// converter.
//
// Fatal errors fall into four classes:
//   - lexical: a line matches no recognized prefix
//   - field shape: a line does not fit its kind's grammar
//   - dangling reference: a reference names a record that does not exist
//   - ambiguous composite: a two-vector pair names a missing side
//
// Each carries the line number, kind and offending token.
package diagnostic
