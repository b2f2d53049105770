package emit

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"txt2yaml/internal/document"
	"txt2yaml/internal/record"
	"txt2yaml/internal/timeline"
)

// DefaultIndent is the number of spaces per nesting level.
const DefaultIndent = 2

// Keys of the command section.
const (
	KeyTarget   = "SC"
	KeySequence = "Command Sequence"
	KeyTime     = "Time"
	KeyCommands = "Commands"
	KeyType     = "Type"
	KeySubtype  = "Subtype"
	KeyData     = "Command Data"
)

// Options controls the layout of the emitted document.
type Options struct {
	// Indent is the number of spaces per level; zero selects DefaultIndent.
	Indent int
	// StartComment is written before the first key.
	StartComment string
	// KeyComments are written before the matching top-level key.
	KeyComments map[string]string
}

// Encode serializes doc to YAML.
func Encode(doc *document.Document, opts Options) ([]byte, error) {
	root, err := Build(doc, opts)
	if err != nil {
		return nil, err
	}

	indent := opts.Indent
	if indent == 0 {
		indent = DefaultIndent
	}

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)

	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("closing encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// Build returns the document node for doc.
func Build(doc *document.Document, opts Options) (*yaml.Node, error) {
	b := &builder{emitted: make(map[*record.Record]*yaml.Node)}

	top := mapping()

	for _, c := range doc.Collections.All() {
		items := sequence()

		for _, r := range c.Records() {
			n, err := b.record(r)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", r.Label(), err)
			}

			item := mapping()
			appendPair(item, c.Kind.String(), n)
			items.Content = append(items.Content, item)
		}

		if len(items.Content) == 0 {
			items.Style = yaml.FlowStyle
		}

		addKey(top, c.Kind.CollectionKey(), items, opts.KeyComments)
	}

	commands, err := b.sequences(doc.Sequences)
	if err != nil {
		return nil, err
	}

	addKey(top, record.CommandsKey, commands, opts.KeyComments)

	return &yaml.Node{
		Kind:        yaml.DocumentNode,
		HeadComment: opts.StartComment,
		Content:     []*yaml.Node{top},
	}, nil
}

// builder tracks which anchored records were already written in full.
type builder struct {
	emitted map[*record.Record]*yaml.Node
}

func addKey(top *yaml.Node, key string, value *yaml.Node, comments map[string]string) {
	k := scalar("!!str", key)
	k.HeadComment = comments[key]
	top.Content = append(top.Content, k, value)
}

func (b *builder) sequences(seqs []*timeline.Sequence) (*yaml.Node, error) {
	out := sequence()

	for _, seq := range seqs {
		events := sequence()

		for _, ev := range seq.Events {
			cmds := sequence()

			for _, sub := range ev.Commands {
				n, err := b.subCommand(sub)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", sub.Line, err)
				}

				cmds.Content = append(cmds.Content, n)
			}

			if len(cmds.Content) == 0 {
				cmds.Style = yaml.FlowStyle
			}

			evNode := mapping()
			appendPair(evNode, KeyTime, floatNode(ev.Time))
			appendPair(evNode, KeyCommands, cmds)
			events.Content = append(events.Content, evNode)
		}

		seqNode := mapping()
		appendPair(seqNode, KeyTarget, scalar("!!int", strconv.Itoa(seq.Target)))
		appendPair(seqNode, KeySequence, events)
		out.Content = append(out.Content, seqNode)
	}

	if len(out.Content) == 0 {
		out.Style = yaml.FlowStyle
	}

	return out, nil
}

func (b *builder) subCommand(sub *timeline.SubCommand) (*yaml.Node, error) {
	n := mapping()
	appendPair(n, KeyType, scalar("!!str", sub.Type))

	if sub.Subtype != "" {
		appendPair(n, KeySubtype, scalar("!!str", sub.Subtype))
	}

	if sub.Data != nil {
		data, err := b.record(sub.Data)
		if err != nil {
			return nil, err
		}

		appendPair(n, KeyData, data)
	}

	return n, nil
}

// record writes r in full on first sight and as an alias afterwards.
func (b *builder) record(r *record.Record) (*yaml.Node, error) {
	if r == nil {
		return nil, errors.New("unresolved record reference")
	}

	if prev, ok := b.emitted[r]; ok && r.IsShared() {
		return &yaml.Node{Kind: yaml.AliasNode, Value: r.Anchor, Alias: prev}, nil
	}

	n, err := b.fields(r.Fields)
	if err != nil {
		return nil, err
	}

	n.Anchor = r.Anchor
	b.emitted[r] = n

	return n, nil
}

func (b *builder) fields(m *record.Map) (*yaml.Node, error) {
	n := mapping()

	var err error

	m.Range(func(key string, v any) bool {
		var child *yaml.Node

		child, err = b.value(v)
		if err != nil {
			err = fmt.Errorf("field %q: %w", key, err)

			return false
		}

		appendPair(n, key, child)

		return true
	})

	return n, err
}

func (b *builder) value(v any) (*yaml.Node, error) {
	switch val := v.(type) {
	case string:
		return scalar("!!str", val), nil
	case bool:
		return scalar("!!bool", strconv.FormatBool(val)), nil
	case int:
		return scalar("!!int", strconv.Itoa(val)), nil
	case float64:
		return floatNode(val), nil
	case []float64:
		s := flow()
		for _, f := range val {
			s.Content = append(s.Content, floatNode(f))
		}

		return s, nil
	case []string:
		s := flow()
		for _, str := range val {
			s.Content = append(s.Content, scalar("!!str", str))
		}

		return s, nil
	case []bool:
		s := flow()
		for _, f := range val {
			s.Content = append(s.Content, scalar("!!bool", strconv.FormatBool(f)))
		}

		return s, nil
	case *record.Map:
		return b.fields(val)
	case *record.Record:
		return b.record(val)
	case []*record.Record:
		s := sequence()
		for _, r := range val {
			n, err := b.record(r)
			if err != nil {
				return nil, err
			}

			s.Content = append(s.Content, n)
		}

		return s, nil
	case []any:
		s := sequence()
		for _, item := range val {
			n, err := b.value(item)
			if err != nil {
				return nil, err
			}

			s.Content = append(s.Content, n)
		}

		if len(s.Content) == 0 {
			s.Style = yaml.FlowStyle
		}

		return s, nil
	case record.Ref, []record.Ref:
		return nil, fmt.Errorf("unresolved reference %v", val)
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}

// FormatFloat renders f so that it always reads back as a float.
func FormatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	}

	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}

	return s
}

func floatNode(f float64) *yaml.Node {
	return scalar("!!float", FormatFloat(f))
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func mapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func sequence() *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
}

func flow() *yaml.Node {
	s := sequence()
	s.Style = yaml.FlowStyle

	return s
}

func appendPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, scalar("!!str", key), value)
}
