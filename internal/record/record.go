package record

import "fmt"

// Field names shared by every record.
const (
	FieldIndex       = "Index"
	FieldDescription = "Description"
)

// Record is one parsed (or synthesized) configuration entry.
type Record struct {
	Kind Kind
	// Index is the resolution key within the kind's collection. It is
	// mirrored in Fields until the index-stripping pass removes it.
	Index int
	// Position is the parse order within the kind's collection.
	Position    int
	Description string
	// Fields holds the emitted attributes in order, starting with Index and
	// Description.
	Fields *Map
	// Anchor is set by the shared-identity pass when the record is the
	// target of at least one reference.
	Anchor string
	// Line is the 1-based source line, 0 for synthesized records.
	Line int
	// Key replaces Index in the label of records keyed by something other
	// than a declared index, such as composites keyed by "2_3".
	Key string
}

// New creates a record with its bookkeeping fields populated.
func New(kind Kind, index, position int, description string, line int) *Record {
	fields := NewMap()
	fields.Set(FieldIndex, index)
	fields.Set(FieldDescription, description)

	return &Record{
		Kind:        kind,
		Index:       index,
		Position:    position,
		Description: description,
		Fields:      fields,
		Line:        line,
	}
}

// Set stores an attribute on the record.
func (r *Record) Set(key string, value any) {
	r.Fields.Set(key, value)
}

// Get reads an attribute from the record.
func (r *Record) Get(key string) (any, bool) {
	return r.Fields.Get(key)
}

// IsShared reports whether the record carries a shared identity.
func (r *Record) IsShared() bool {
	return r.Anchor != ""
}

// Label returns a short human-readable identifier such as "Controller_1".
func (r *Record) Label() string {
	if r.Key != "" {
		return r.Kind.AnchorStem() + "_" + r.Key
	}

	return fmt.Sprintf("%s_%d", r.Kind.AnchorStem(), r.Index)
}

// Ref is an unresolved reference to a record of Kind by Index.
type Ref struct {
	Kind  Kind
	Index int
	// Token is the source token the reference was read from.
	Token string
	Line  int
}

func (r Ref) String() string {
	return fmt.Sprintf("%s[%d]", r.Kind, r.Index)
}
