// Package extract implements the typed record extractor: one grammar per
// record kind, all behind the same Extract contract.
//
// Every record gets Index from the number in its label (parse order when
// the label has none), Position from parse order, and Description from the
// inline comment or, failing that, the label itself.
package extract
