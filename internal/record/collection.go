package record

// Collection is the append-only, ordered set of records of one kind.
type Collection struct {
	Kind    Kind
	records []*Record
	byIndex map[int]*Record
}

// NewCollection creates an empty collection for kind.
func NewCollection(kind Kind) *Collection {
	return &Collection{
		Kind:    kind,
		byIndex: make(map[int]*Record),
	}
}

// Append adds r to the collection. It returns false without appending when
// a record with the same Index already exists.
func (c *Collection) Append(r *Record) bool {
	if _, exists := c.byIndex[r.Index]; exists {
		return false
	}

	c.records = append(c.records, r)
	c.byIndex[r.Index] = r

	return true
}

// Lookup returns the record whose Index equals index.
func (c *Collection) Lookup(index int) (*Record, bool) {
	r, ok := c.byIndex[index]

	return r, ok
}

// Records returns the records in parse order.
func (c *Collection) Records() []*Record {
	return c.records
}

// Len returns the number of records.
func (c *Collection) Len() int {
	return len(c.records)
}

// Collections holds one collection per kind.
type Collections struct {
	byKind map[Kind]*Collection
}

// NewCollections creates an empty collection for every kind.
func NewCollections() *Collections {
	cs := &Collections{byKind: make(map[Kind]*Collection, KindTotal)}
	for _, k := range Kinds() {
		cs.byKind[k] = NewCollection(k)
	}

	return cs
}

// Of returns the collection of kind. It panics on an invalid kind.
func (cs *Collections) Of(kind Kind) *Collection {
	if !kind.IsValid() {
		panic("record: no collection for " + kind.String())
	}

	return cs.byKind[kind]
}

// All returns every collection in emission order.
func (cs *Collections) All() []*Collection {
	out := make([]*Collection, 0, len(cs.byKind))
	for _, k := range Kinds() {
		out = append(out, cs.byKind[k])
	}

	return out
}

// Count returns the total number of records across all collections.
func (cs *Collections) Count() int {
	n := 0
	for _, c := range cs.byKind {
		n += c.Len()
	}

	return n
}
