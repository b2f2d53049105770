package extract

import (
	"regexp"
	"strconv"
	"strings"

	"txt2yaml/internal/common"
	"txt2yaml/internal/diagnostic"
	"txt2yaml/internal/lexer"
	"txt2yaml/internal/record"
)

// reader walks the argument tokens of one line (the tokens after the label).
// The first failure is kept and every later read returns a zero value, so a
// kind rule reads all of its fields and checks err once at the end.
type reader struct {
	line lexer.Line
	kind record.Kind
	args []string
	err  error
}

func newReader(line lexer.Line) *reader {
	return &reader{line: line, kind: line.Kind, args: line.Tokens[1:]}
}

func (r *reader) fail(token, format string, args ...any) {
	if r.err != nil {
		return
	}

	r.err = diagnostic.Errorf(diagnostic.CodeFieldShape, r.line.Number, r.kind.String(), token, format, args...)
}

func (r *reader) token(i int) string {
	if i < 0 || i >= len(r.args) {
		r.fail(r.line.Tag(), "missing token %d", i+2)

		return ""
	}

	return r.args[i]
}

func (r *reader) str(i int) string {
	return r.token(i)
}

func (r *reader) float(i int) float64 {
	tok := r.token(i)
	if r.err != nil {
		return 0
	}

	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		r.fail(tok, "expected a number")

		return 0
	}

	return f
}

func (r *reader) floats(from, n int) []float64 {
	out := make([]float64, n)
	for i := range n {
		out[i] = r.float(from + i)
	}

	return out
}

// rest reads every token from index from to the end as floats.
func (r *reader) rest(from int) []float64 {
	return r.floats(from, max(len(r.args)-from, 0))
}

func (r *reader) integer(i int) int {
	tok := r.token(i)
	if r.err != nil {
		return 0
	}

	n, err := strconv.Atoi(tok)
	if err != nil {
		r.fail(tok, "expected an integer")

		return 0
	}

	return n
}

// flag reads a boolean written as one of two literals, compared
// case-insensitively.
func (r *reader) flag(i int, yes, no string) bool {
	tok := r.token(i)
	if r.err != nil {
		return false
	}

	switch strings.ToLower(tok) {
	case yes:
		return true
	case no:
		return false
	default:
		r.fail(tok, "expected %q or %q", yes, no)

		return false
	}
}

func (r *reader) ref(i int, kind record.Kind) record.Ref {
	tok := r.token(i)
	if r.err != nil {
		return record.Ref{}
	}

	n, ok := lexer.FirstInt(tok)
	if !ok {
		r.fail(tok, "expected a %s reference", kind)

		return record.Ref{}
	}

	return record.Ref{Kind: kind, Index: n, Token: tok, Line: r.line.Number}
}

func (r *reader) refs(from int, kind record.Kind) []record.Ref {
	out := make([]record.Ref, 0, max(len(r.args)-from, 0))
	for i := from; i < len(r.args); i++ {
		out = append(out, r.ref(i, kind))
	}

	return out
}

// arity checks the argument count against [lo, hi]; hi < 0 means unbounded.
func (r *reader) arity(lo, hi int) bool {
	n := len(r.args)
	if (hi < 0 && n >= lo) || common.IsInRange(lo, n, hi) {
		return true
	}

	switch {
	case hi < 0:
		r.fail(r.line.Tag(), "expected at least %d values, got %d", lo, n)
	case lo == hi:
		r.fail(r.line.Tag(), "expected %d values, got %d", lo, n)
	default:
		r.fail(r.line.Tag(), "expected %d to %d values, got %d", lo, hi, n)
	}

	return false
}

// dutyCycle matches actuator command entries such as WHL_[0]_[0.5].
var dutyCycle = regexp.MustCompile(`^(\w+?)_\[(\d+)\]_\[([-+]?[0-9.]+(?:[eE][-+]?\d+)?)\]$`)

func (r *reader) duty(i int) *record.Map {
	tok := r.token(i)
	if r.err != nil {
		return nil
	}

	m := dutyCycle.FindStringSubmatch(tok)
	if m == nil {
		r.fail(tok, "expected TYPE_[index]_[duty cycle]")

		return nil
	}

	idx, err := strconv.Atoi(m[2])
	if err != nil {
		r.fail(tok, "hardware index out of range")

		return nil
	}

	duty, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		r.fail(tok, "expected a numeric duty cycle")

		return nil
	}

	out := record.NewMap()
	out.Set("Type", m[1])
	out.Set("Index", idx)
	out.Set("Duty Cycle", duty)

	return out
}
