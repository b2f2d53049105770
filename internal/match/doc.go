// Package match provides fuzzy string matching used to suggest the intended
// line tag when the tokenizer meets an unrecognized one.
package match
