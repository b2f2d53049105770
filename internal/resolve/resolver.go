package resolve

import (
	"errors"
	"fmt"

	"txt2yaml/internal/diagnostic"
	"txt2yaml/internal/document"
	"txt2yaml/internal/record"
	"txt2yaml/internal/timeline"
)

// Resolver links references to records within one document.
type Resolver struct {
	doc *document.Document
	// composites caches synthesized two vector records by index pair.
	composites map[CompositeKey]*record.Record
	// used marks every record that a reference or sub-command reached.
	used map[*record.Record]bool
	errs []error
}

// NewResolver creates a Resolver for doc.
func NewResolver(doc *document.Document) *Resolver {
	return &Resolver{
		doc:        doc,
		composites: make(map[CompositeKey]*record.Record),
		used:       make(map[*record.Record]bool),
	}
}

// Resolve links every reference in the document. All dangling references
// and ambiguous composites are collected and returned joined; on error the
// document must not be emitted.
func (r *Resolver) Resolve() error {
	for _, c := range r.doc.Collections.All() {
		if c.Kind.IsComposite() {
			continue
		}

		for _, rec := range c.Records() {
			r.resolveMap(rec, rec.Fields)
		}
	}

	for _, seq := range r.doc.Sequences {
		for _, ev := range seq.Events {
			for _, sub := range ev.Commands {
				r.resolveSubCommand(sub)
			}
		}
	}

	return errors.Join(r.errs...)
}

// Unused returns the parsed records that no reference or sub-command
// reached, in emission order.
func (r *Resolver) Unused() []*record.Record {
	var out []*record.Record

	for _, rec := range r.doc.Records() {
		if rec.Kind.IsComposite() || r.used[rec] {
			continue
		}

		out = append(out, rec)
	}

	return out
}

// Composites returns the number of synthesized composite records.
func (r *Resolver) Composites() int {
	return len(r.composites)
}

func (r *Resolver) resolveMap(owner *record.Record, m *record.Map) {
	for _, key := range m.Keys() {
		v, _ := m.Get(key)
		if resolved, ok := r.resolveValue(owner, v); ok {
			m.Set(key, resolved)
		}
	}
}

// resolveValue returns the replacement for v and whether one is needed.
func (r *Resolver) resolveValue(owner *record.Record, v any) (any, bool) {
	switch val := v.(type) {
	case record.Ref:
		return r.lookup(owner, val), true
	case []record.Ref:
		out := make([]*record.Record, 0, len(val))
		for _, ref := range val {
			out = append(out, r.lookup(owner, ref))
		}

		return out, true
	case *record.Map:
		r.resolveMap(owner, val)
	case []any:
		for i, item := range val {
			if resolved, ok := r.resolveValue(owner, item); ok {
				val[i] = resolved
			}
		}
	}

	return nil, false
}

// lookup finds the record ref names. A dangling reference is recorded and
// yields nil so resolution can continue and report every failure.
func (r *Resolver) lookup(owner *record.Record, ref record.Ref) *record.Record {
	target, ok := r.doc.Collections.Of(ref.Kind).Lookup(ref.Index)
	if !ok {
		r.errs = append(r.errs, dangling(owner.Kind.String(), ref))

		return nil
	}

	r.used[target] = true

	return target
}

func (r *Resolver) resolveSubCommand(sub *timeline.SubCommand) {
	switch {
	case sub.Source == 0:
		return
	case sub.Source.IsComposite():
		if rec := r.synthesize(sub); rec != nil {
			sub.Data = rec
		}

		return
	}

	ref := record.Ref{Kind: sub.Source, Index: sub.Refs[0], Token: sub.Token, Line: sub.Line}

	target, ok := r.doc.Collections.Of(sub.Source).Lookup(ref.Index)
	if !ok {
		r.errs = append(r.errs, dangling("Command", ref))

		return
	}

	r.used[target] = true
	sub.Data = target
}

func dangling(kind string, ref record.Ref) error {
	return diagnostic.Errorf(diagnostic.CodeDanglingReference, ref.Line, kind, ref.Token,
		"no %s with index %d", ref.Kind, ref.Index)
}

// String summarizes the resolver state for debug logging.
func (r *Resolver) String() string {
	return fmt.Sprintf("resolver{records: %d, used: %d, composites: %d, errors: %d}",
		r.doc.Collections.Count(), len(r.used), len(r.composites), len(r.errs))
}
