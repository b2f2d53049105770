package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"txt2yaml/internal/common"
)

// Code identifies a class of diagnostic.
type Code string

const (
	// CodeLexical marks a line that matches no recognized prefix.
	CodeLexical Code = "lexical"
	// CodeFieldShape marks a token count or token type that does not fit the
	// kind's grammar.
	CodeFieldShape Code = "field_shape"
	// CodeDanglingReference marks a reference with no matching record.
	CodeDanglingReference Code = "dangling_reference"
	// CodeAmbiguousComposite marks a two-vector pair whose primary or
	// secondary side cannot be found.
	CodeAmbiguousComposite Code = "ambiguous_composite"
	// CodeUnreferenced marks a command record no sub-command uses.
	CodeUnreferenced Code = "unreferenced"
)

// Diagnostics holds all diagnostic information from a conversion.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code Code
	// Message is the human-readable description.
	Message string
	// Kind names the record kind this relates to (if any).
	Kind string
	// Token is the offending source token (if any).
	Token string
	// Line is the 1-based source line (0 when unknown).
	Line int
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(e *Error) {
	d.Errors = append(d.Errors, e.Diagnostic)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code Code, message, kind, token string, line int) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Kind:     kind,
		Token:    token,
		Line:     line,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code Code, message, kind, token string, line int) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Kind:     kind,
		Token:    token,
		Line:     line,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Err returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Err() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string such as
// `line 12 [Controller] Gains_9: [dangling_reference] no Gains with index 9`.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Line > 0 {
		prefix = append(prefix, fmt.Sprintf("line %d", d.Line))
	}

	if d.Kind != "" {
		prefix = append(prefix, "["+d.Kind+"]")
	}

	if d.Token != "" {
		prefix = append(prefix, d.Token)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(d.Suggestions, ", "))
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
