// Package lexer turns the raw DSM command file into classified lines.
//
// For each line the trailing comment is split off, blank and section-header
// ("<...") lines are skipped, an EOF or END_OF_FILE marker ends the input,
// and the leading token is matched against the known tags (longest first).
// Anything else is a lexical error.
package lexer
