package document

import (
	"txt2yaml/internal/record"
	"txt2yaml/internal/timeline"
)

// Document is the complete result of parsing one DSM command file.
type Document struct {
	Collections *record.Collections
	Sequences   []*timeline.Sequence
}

// New creates a Document over already extracted collections and sequences.
func New(collections *record.Collections, sequences []*timeline.Sequence) *Document {
	if collections == nil {
		collections = record.NewCollections()
	}

	return &Document{Collections: collections, Sequences: sequences}
}

// Records returns every record in emission order: collections by kind,
// then by position.
func (d *Document) Records() []*record.Record {
	out := make([]*record.Record, 0, d.Collections.Count())
	for _, c := range d.Collections.All() {
		out = append(out, c.Records()...)
	}

	return out
}

// SubCommands returns every sub-command of every event in document order.
func (d *Document) SubCommands() []*timeline.SubCommand {
	var out []*timeline.SubCommand

	for _, seq := range d.Sequences {
		for _, ev := range seq.Events {
			out = append(out, ev.Commands...)
		}
	}

	return out
}

// References counts, per record, the reference sites that point at it:
// record-valued fields at any depth and the data of every sub-command.
func (d *Document) References() map[*record.Record]int {
	counts := make(map[*record.Record]int)

	for _, r := range d.Records() {
		countMap(r.Fields, counts)
	}

	for _, sub := range d.SubCommands() {
		if sub.Data != nil {
			counts[sub.Data]++
		}
	}

	return counts
}

func countMap(m *record.Map, counts map[*record.Record]int) {
	m.Range(func(_ string, v any) bool {
		countValue(v, counts)

		return true
	})
}

func countValue(v any, counts map[*record.Record]int) {
	switch val := v.(type) {
	case *record.Record:
		counts[val]++
	case []*record.Record:
		for _, r := range val {
			counts[r]++
		}
	case *record.Map:
		countMap(val, counts)
	case []any:
		for _, item := range val {
			countValue(item, counts)
		}
	}
}

// AssignIdentities anchors every referenced record with its label, such as
// "Controller_1" or "TwoVector_2_3", and returns the number of anchors.
// Records nothing points at stay plain. Calling it again yields the same
// anchors.
func (d *Document) AssignIdentities() int {
	counts := d.References()

	n := 0

	for _, r := range d.Records() {
		if counts[r] == 0 {
			r.Anchor = ""

			continue
		}

		r.Anchor = r.Label()
		n++
	}

	return n
}

// StripIndices deletes the Index field from every record reachable from the
// document. Maps that are not records keep their Index entries; actuator
// duty-cycle entries use it for the hardware index.
func (d *Document) StripIndices() {
	visited := make(map[*record.Record]bool)

	for _, r := range d.Records() {
		stripRecord(r, visited)
	}

	for _, sub := range d.SubCommands() {
		if sub.Data != nil {
			stripRecord(sub.Data, visited)
		}
	}
}

func stripRecord(r *record.Record, visited map[*record.Record]bool) {
	if visited[r] {
		return
	}

	visited[r] = true
	r.Fields.Delete(record.FieldIndex)
	stripMap(r.Fields, visited)
}

func stripMap(m *record.Map, visited map[*record.Record]bool) {
	m.Range(func(_ string, v any) bool {
		stripValue(v, visited)

		return true
	})
}

func stripValue(v any, visited map[*record.Record]bool) {
	switch val := v.(type) {
	case *record.Record:
		stripRecord(val, visited)
	case []*record.Record:
		for _, r := range val {
			stripRecord(r, visited)
		}
	case *record.Map:
		stripMap(val, visited)
	case []any:
		for _, item := range val {
			stripValue(item, visited)
		}
	}
}
