// Package document holds the converted graph: the per-kind collections and
// the per-target command sequences. It implements the two graph passes that
// run after resolution:
//
//   - AssignIdentities anchors every record that is the target of a
//     reference so the emitter writes it once and aliases it elsewhere.
//   - StripIndices removes the bookkeeping Index field from every record.
package document
