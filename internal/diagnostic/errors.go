package diagnostic

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is matching against an *Error's Code.
var (
	ErrLexical            = errors.New("lexical error")
	ErrFieldShape         = errors.New("field shape error")
	ErrDanglingReference  = errors.New("dangling reference")
	ErrAmbiguousComposite = errors.New("ambiguous composite")
)

var sentinels = map[Code]error{
	CodeLexical:            ErrLexical,
	CodeFieldShape:         ErrFieldShape,
	CodeDanglingReference:  ErrDanglingReference,
	CodeAmbiguousComposite: ErrAmbiguousComposite,
}

// Error is a fatal diagnostic. Every conversion failure caused by the input
// file is reported as an *Error.
type Error struct {
	Diagnostic
}

// Errorf builds a fatal diagnostic.
func Errorf(code Code, line int, kind, token, format string, args ...any) *Error {
	return &Error{Diagnostic: Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Kind:     kind,
		Token:    token,
		Line:     line,
	}}
}

// WithSuggestions attaches alternatives to the error and returns it.
func (e *Error) WithSuggestions(suggestions ...string) *Error {
	e.Suggestions = append(e.Suggestions, suggestions...)

	return e
}

func (e *Error) Error() string {
	return e.String()
}

// Is matches the sentinel of the error's code.
func (e *Error) Is(target error) bool {
	s, ok := sentinels[e.Code]

	return ok && s == target
}

// AsError extracts every *Error contained in err, including errors joined
// with errors.Join.
func AsError(err error) []*Error {
	if err == nil {
		return nil
	}

	if e, ok := err.(*Error); ok {
		return []*Error{e}
	}

	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		var out []*Error
		for _, inner := range u.Unwrap() {
			out = append(out, AsError(inner)...)
		}

		return out
	case interface{ Unwrap() error }:
		return AsError(u.Unwrap())
	}

	return nil
}
