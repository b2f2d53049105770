package convert

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"txt2yaml/internal/config"
	"txt2yaml/internal/diagnostic"
	"txt2yaml/internal/document"
	"txt2yaml/internal/emit"
	"txt2yaml/internal/extract"
	"txt2yaml/internal/lexer"
	"txt2yaml/internal/resolve"
	"txt2yaml/internal/timeline"
)

// Result is the outcome of one successful conversion.
type Result struct {
	// Name identifies the input, usually its path.
	Name string
	// Output is the path written by ConvertFile, empty otherwise.
	Output   string
	Document *document.Document
	YAML     []byte
	// Diagnostics holds the non-fatal findings.
	Diagnostics diagnostic.Diagnostics
	Records     int
	Anchors     int
	Composites  int
}

// Converter converts DSM command files with one configuration.
type Converter struct {
	cfg *config.Config
	log *zap.Logger
}

// New creates a Converter. A nil cfg selects the defaults and a nil logger
// discards log output.
func New(cfg *config.Config, log *zap.Logger) *Converter {
	if cfg == nil {
		cfg = config.Default()
	}

	if log == nil {
		log = zap.NewNop()
	}

	return &Converter{cfg: cfg, log: log}
}

// Config returns the converter settings.
func (c *Converter) Config() *config.Config {
	return c.cfg
}

// Parse reads the input into an unresolved document. Every field-shape
// error is reported; a lexical error stops the read.
func (c *Converter) Parse(r io.Reader) (*document.Document, error) {
	ex := extract.New()
	tl := timeline.NewBuilder()

	var errs []error

	cur := lexer.NewCursor(r, c.cfg.CommentDelimiter)
	for cur.Next() {
		line := cur.Line()

		var err error

		switch line.Family {
		case lexer.FamilyEvent:
			_, err = tl.Add(line)
		default:
			_, err = ex.Extract(line)
		}

		if err != nil {
			errs = append(errs, err)
		}
	}

	if err := cur.Err(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return document.New(ex.Collections(), tl.Sequences()), nil
}

// Convert runs the full pipeline over r. On error nothing is emitted.
func (c *Converter) Convert(r io.Reader, name string) (*Result, error) {
	doc, err := c.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}

	res := &Result{Name: name, Document: doc}

	rs := resolve.NewResolver(doc)
	if err := rs.Resolve(); err != nil {
		return nil, fmt.Errorf("resolving %s: %w", name, err)
	}

	c.log.Debug("Resolved document", zap.String("input", name), zap.Stringer("resolver", rs))

	for _, rec := range rs.Unused() {
		if rec.Kind.IsCommand() {
			res.Diagnostics.AddWarning(diagnostic.CodeUnreferenced, "not used by any command",
				rec.Kind.String(), rec.Label(), rec.Line)
			c.log.Warn("Unreferenced command configuration",
				zap.String("input", name),
				zap.String("record", rec.Label()),
				zap.Int("line", rec.Line))

			continue
		}

		res.Diagnostics.AddInfo(diagnostic.CodeUnreferenced, "not referenced",
			rec.Kind.String(), rec.Label(), rec.Line)
	}

	res.Anchors = doc.AssignIdentities()
	doc.StripIndices()

	res.YAML, err = emit.Encode(doc, emit.Options{
		Indent:       c.cfg.Indent,
		StartComment: c.cfg.Comments.Start.Comment(),
		KeyComments:  c.cfg.Comments.KeyComments(),
	})
	if err != nil {
		return nil, fmt.Errorf("emitting %s: %w", name, err)
	}

	res.Records = doc.Collections.Count()
	res.Composites = rs.Composites()

	return res, nil
}

// ConvertFile converts the file at in and writes the document to out. The
// output is replaced atomically and left untouched on error.
func (c *Converter) ConvertFile(in, out string) (*Result, error) {
	f, err := os.Open(in)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	c.log.Info("Converting", zap.String("input", in), zap.String("output", out))

	res, err := c.Convert(f, in)
	if err != nil {
		return nil, err
	}

	if err := WriteFileAtomic(out, res.YAML); err != nil {
		return nil, err
	}

	res.Output = out

	c.log.Info("Converted",
		zap.String("output", out),
		zap.Int("records", res.Records),
		zap.Int("anchors", res.Anchors),
		zap.Int("composites", res.Composites),
		zap.Int("warnings", len(res.Diagnostics.Warnings)))

	return res, nil
}
