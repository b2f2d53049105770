// Package record defines the data model shared by every conversion stage:
// record kinds, ordered field maps, records, references, and the per-kind
// collections they are appended to.
//
// Records are created once by the extractor and afterwards mutated only by
// reference resolution (a Ref becomes a *Record) and index stripping (the
// Index field is deleted from Fields).
package record
