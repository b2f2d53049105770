package lexer

import (
	"bufio"
	"io"
	"strings"

	"txt2yaml/internal/diagnostic"
	"txt2yaml/internal/match"
	"txt2yaml/internal/record"
)

// DefaultCommentDelimiter truncates a line; the text after it is the line's
// inline description.
const DefaultCommentDelimiter = "#"

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Family is the line family selected by the leading tag.
type Family int

const (
	_ Family = iota
	// FamilyConfig lines declare one configuration record.
	FamilyConfig
	// FamilyEvent lines declare a timed command event.
	FamilyEvent
)

// Line is one classified, tokenized input line.
type Line struct {
	// Number is the 1-based line number in the source.
	Number int
	// Raw is the line as read, without the trailing newline.
	Raw string
	// Tokens are the whitespace-separated fields before the comment.
	Tokens []string
	// Comment is the trimmed text after the comment delimiter, if any.
	Comment string
	// HasComment reports whether the delimiter was present.
	HasComment bool
	Family     Family
	// Kind is set for FamilyConfig lines.
	Kind record.Kind
}

// Tag returns the leading token.
func (l Line) Tag() string {
	if len(l.Tokens) == 0 {
		return ""
	}

	return l.Tokens[0]
}

// Cursor reads classified lines in a single forward pass. It is not
// restartable: once Next returns false the source is exhausted, a
// terminator was reached, or an error occurred.
type Cursor struct {
	scanner *bufio.Scanner
	delim   string
	number  int
	line    Line
	err     error
	done    bool
}

// NewCursor creates a cursor over r. An empty delim selects
// DefaultCommentDelimiter.
func NewCursor(r io.Reader, delim string) *Cursor {
	if delim == "" {
		delim = DefaultCommentDelimiter
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return &Cursor{scanner: sc, delim: delim}
}

// Next advances to the next meaningful line.
func (c *Cursor) Next() bool {
	if c.done {
		return false
	}

	for c.scanner.Scan() {
		c.number++
		raw := strings.TrimRight(c.scanner.Text(), "\r")

		body, comment, hasComment := strings.Cut(raw, c.delim)
		// Only the first comment segment is the description.
		comment, _, _ = strings.Cut(comment, c.delim)
		tokens := strings.Fields(body)

		if len(tokens) == 0 || strings.HasPrefix(tokens[0], "<") {
			continue
		}

		if isTerminator(tokens[0]) {
			c.done = true

			return false
		}

		family, kind, ok := Classify(tokens[0])
		if !ok {
			c.err = diagnostic.Errorf(diagnostic.CodeLexical, c.number, "", tokens[0],
				"unrecognized line tag").
				WithSuggestions(match.Suggest(tokens[0], Prefixes(), 3)...)
			c.done = true

			return false
		}

		c.line = Line{
			Number:     c.number,
			Raw:        raw,
			Tokens:     tokens,
			Comment:    strings.TrimSpace(comment),
			HasComment: hasComment,
			Family:     family,
			Kind:       kind,
		}

		return true
	}

	c.err = c.scanner.Err()
	c.done = true

	return false
}

// Line returns the current line. It is valid after Next returned true.
func (c *Cursor) Line() Line {
	return c.line
}

// Err returns the first lexical or read error.
func (c *Cursor) Err() error {
	return c.err
}

// isTerminator reports whether a line starting with token ends the input:
// any token beginning with EOF, or END_OF_FILE, in any case.
func isTerminator(token string) bool {
	t := strings.ToUpper(token)

	return strings.HasPrefix(t, "EOF") || t == "END_OF_FILE"
}
