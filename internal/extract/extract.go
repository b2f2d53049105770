package extract

import (
	"fmt"
	"strconv"
	"strings"

	"txt2yaml/internal/diagnostic"
	"txt2yaml/internal/lexer"
	"txt2yaml/internal/record"
)

// Extractor maps classified configuration lines to typed records and
// appends them to per-kind collections.
type Extractor struct {
	collections *record.Collections
}

// New creates an Extractor with empty collections.
func New() *Extractor {
	return &Extractor{collections: record.NewCollections()}
}

// Collections returns the collections built so far.
func (e *Extractor) Collections() *record.Collections {
	return e.collections
}

// Extract parses one configuration line into a record of line.Kind and
// appends it to that kind's collection.
func (e *Extractor) Extract(line lexer.Line) (*record.Record, error) {
	if line.Family != lexer.FamilyConfig {
		return nil, fmt.Errorf("line %d: not a configuration line", line.Number)
	}

	kindRule, ok := rules[line.Kind]
	if !ok {
		return nil, diagnostic.Errorf(diagnostic.CodeLexical, line.Number, line.Kind.String(), line.Tag(),
			"no grammar for kind")
	}

	label := line.Tag()
	coll := e.collections.Of(line.Kind)
	position := coll.Len()

	index, ok := declaredIndex(label, line.Kind)
	if !ok {
		index = position
	}

	rec := record.New(line.Kind, index, position, description(line), line.Number)

	r := newReader(line)
	if r.arity(kindRule.lo, kindRule.hi) {
		kindRule.fill(r, rec)
	}

	if r.err != nil {
		return nil, r.err
	}

	if !coll.Append(rec) {
		return nil, diagnostic.Errorf(diagnostic.CodeFieldShape, line.Number, line.Kind.String(), label,
			"duplicate index %d", index)
	}

	return rec, nil
}

// declaredIndex reads the number that follows the kind's tag in the label,
// e.g. 3 from "Gains_3" or 2 from "AttitudeCmd_PV2".
func declaredIndex(label string, kind record.Kind) (int, bool) {
	rest := strings.TrimPrefix(label, kind.Prefix())

	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}

	if end == 0 {
		return 0, false
	}

	n, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0, false
	}

	return n, true
}

func description(line lexer.Line) string {
	if line.HasComment && line.Comment != "" {
		return line.Comment
	}

	return line.Tag()
}
