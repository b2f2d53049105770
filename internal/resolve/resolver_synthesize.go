package resolve

import (
	"fmt"

	"txt2yaml/internal/diagnostic"
	"txt2yaml/internal/record"
	"txt2yaml/internal/timeline"
)

// CompositeKey identifies a two vector composite by its primary and
// secondary vector indices.
type CompositeKey struct {
	Primary   int
	Secondary int
}

func (k CompositeKey) String() string {
	return fmt.Sprintf("%d_%d", k.Primary, k.Secondary)
}

// Fields copied from each pointing vector into a composite.
var pointingFields = []string{"Axis", "Target"}

// synthesize returns the composite for a two vector sub-command, building
// and caching it on first use. Each missing side is reported on its own.
func (r *Resolver) synthesize(sub *timeline.SubCommand) *record.Record {
	key := CompositeKey{Primary: sub.Refs[0], Secondary: sub.Refs[1]}

	if rec, ok := r.composites[key]; ok {
		return rec
	}

	pv, pok := r.doc.Collections.Of(record.KindPrimaryVector).Lookup(key.Primary)
	if !pok {
		r.errs = append(r.errs, ambiguous(sub, "primary", key.Primary))
	}

	sv, sok := r.doc.Collections.Of(record.KindSecondaryVector).Lookup(key.Secondary)
	if !sok {
		r.errs = append(r.errs, ambiguous(sub, "secondary", key.Secondary))
	}

	if !pok || !sok {
		return nil
	}

	r.used[pv] = true
	r.used[sv] = true

	coll := r.doc.Collections.Of(record.KindTwoVector)

	rec := record.New(record.KindTwoVector, coll.Len(), coll.Len(),
		fmt.Sprintf("%s + %s", pv.Description, sv.Description), 0)
	rec.Key = key.String()
	rec.Set(record.KindPrimaryVector.String(), pointing(pv))
	rec.Set(record.KindSecondaryVector.String(), pointing(sv))

	for _, shared := range []string{"Controller", "Actuator"} {
		if v, ok := pv.Get(shared); ok {
			rec.Set(shared, v)
		}
	}

	coll.Append(rec)
	r.composites[key] = rec

	return rec
}

// pointing deep-copies the axis and target of a vector record.
func pointing(src *record.Record) *record.Map {
	out := record.NewMap()

	for _, f := range pointingFields {
		v, ok := src.Get(f)
		if !ok {
			continue
		}

		out.Set(f, record.CloneValue(v))
	}

	return out
}

func ambiguous(sub *timeline.SubCommand, side string, index int) error {
	kind := record.KindPrimaryVector
	if side == "secondary" {
		kind = record.KindSecondaryVector
	}

	return diagnostic.Errorf(diagnostic.CodeAmbiguousComposite, sub.Line, record.KindTwoVector.String(),
		sub.Token, "%s side names no %s with index %d", side, kind, index)
}
