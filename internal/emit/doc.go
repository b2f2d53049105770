// Package emit serializes a resolved document to YAML.
//
// The document is built as a yaml.v3 node tree. The first occurrence of an
// anchored record is written in full with its anchor; every later
// occurrence is an alias node pointing at it. Scalar arrays use flow style
// and every collection key is present, with `[]` when it is empty.
package emit
