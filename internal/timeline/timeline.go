package timeline

import (
	"strconv"
	"strings"

	"txt2yaml/internal/diagnostic"
	"txt2yaml/internal/lexer"
	"txt2yaml/internal/record"
)

// Token positions on a DSM_Cmd line:
//
//	DSM_Cmd SC[<n>] <sep> <time> <sep> <sub-command>...
const (
	targetToken  = 1
	timeToken    = 3
	commandStart = 5
)

// SubCommand is one typed action of a command event.
type SubCommand struct {
	Type    string
	Subtype string
	// Source is the collection holding the command's data; zero for
	// sub-commands that carry none (Passive).
	Source record.Kind
	// Refs are the indices read from the token, in encounter order. Two
	// vector pointing carries (primary, secondary).
	Refs []int
	// Token is the source token.
	Token string
	Line  int
	// Data is the resolved command record, set by the resolver.
	Data *record.Record
}

// Event is one timed set of sub-commands for a target.
type Event struct {
	Time     float64
	Commands []*SubCommand
	Line     int
}

// Sequence is the ordered list of events for one target.
type Sequence struct {
	// Target is the spacecraft index read from the target token.
	Target int
	Events []*Event
}

// Builder accumulates events into per-target sequences ordered by the first
// appearance of each target.
type Builder struct {
	sequences []*Sequence
	byTarget  map[int]*Sequence
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{byTarget: make(map[int]*Sequence)}
}

// Add parses a DSM_Cmd line and appends its event to the target's sequence.
func (b *Builder) Add(line lexer.Line) (*Event, error) {
	if line.Family != lexer.FamilyEvent {
		return nil, diagnostic.Errorf(diagnostic.CodeLexical, line.Number, "", line.Tag(),
			"not a command event line")
	}

	if len(line.Tokens) <= timeToken {
		return nil, diagnostic.Errorf(diagnostic.CodeFieldShape, line.Number, "Command", line.Tag(),
			"expected target and time, got %d tokens", len(line.Tokens))
	}

	targetTok := line.Tokens[targetToken]

	target, ok := lexer.FirstInt(targetTok)
	if !ok {
		return nil, diagnostic.Errorf(diagnostic.CodeFieldShape, line.Number, "Command", targetTok,
			"expected a spacecraft identifier such as SC[0]")
	}

	timeTok := line.Tokens[timeToken]

	t, err := strconv.ParseFloat(timeTok, 64)
	if err != nil {
		return nil, diagnostic.Errorf(diagnostic.CodeFieldShape, line.Number, "Command", timeTok,
			"expected a numeric time")
	}

	ev := &Event{Time: t, Line: line.Number}

	for i := commandStart; i < len(line.Tokens); i++ {
		sub, err := Classify(line.Tokens[i], line.Number)
		if err != nil {
			return nil, err
		}

		ev.Commands = append(ev.Commands, sub)
	}

	seq, ok := b.byTarget[target]
	if !ok {
		seq = &Sequence{Target: target}
		b.byTarget[target] = seq
		b.sequences = append(b.sequences, seq)
	}

	seq.Events = append(seq.Events, ev)

	return ev, nil
}

// Sequences returns the per-target sequences in first-seen order.
func (b *Builder) Sequences() []*Sequence {
	return b.sequences
}

// subRule classifies sub-command tokens by tag prefix.
type subRule struct {
	prefix  string
	typ     string
	subtype string
	source  record.Kind
}

// subRules is tested in order; the two-vector form is recognized inside the
// primary-vector rule.
var subRules = []subRule{
	{"TranslationCmd_", "Translation", "Translation", record.KindTranslation},
	{"AttitudeCmd_PV", "Attitude", "One Vector Pointing", record.KindPrimaryVector},
	{"QuaternionCmd_", "Attitude", "Quaternion", record.KindQuaternion},
	{"MirrorCmd_", "Attitude", "Mirror", record.KindMirror},
	{"DetumbleCmd_", "Attitude", "Detumble", record.KindDetumble},
	{"WhlHManageCmd_", "Attitude", "Whl H Manage", record.KindWhlHManage},
	{"ActuatorCmd_", "Actuator", "", record.KindActuatorCmd},
	{"ManeuverCmd_", "Translation", "Maneuver", record.KindManeuver},
	{"NavigationCmd_", "Navigation", "", record.KindNavigation},
}

// TwoVectorSubtype is the subtype of sub-commands that need a composite.
const TwoVectorSubtype = "Two Vector Pointing"

// Classify turns one sub-command token into a SubCommand.
func Classify(token string, line int) (*SubCommand, error) {
	for _, r := range subRules {
		if !strings.HasPrefix(token, r.prefix) {
			continue
		}

		sub := &SubCommand{
			Type:    r.typ,
			Subtype: r.subtype,
			Source:  r.source,
			Token:   token,
			Line:    line,
		}

		want := 1
		if r.source == record.KindPrimaryVector && strings.Contains(token, "_SV") {
			sub.Subtype = TwoVectorSubtype
			sub.Source = record.KindTwoVector
			want = 2
		}

		ints, err := lexer.Ints(strings.TrimPrefix(token, r.prefix))
		if err != nil {
			return nil, diagnostic.Errorf(diagnostic.CodeFieldShape, line, sub.Source.String(), token,
				"index out of range")
		}

		if len(ints) < want {
			return nil, diagnostic.Errorf(diagnostic.CodeFieldShape, line, sub.Source.String(), token,
				"expected %d index(es) in sub-command", want)
		}

		sub.Refs = ints[:want]

		return sub, nil
	}

	lower := strings.ToLower(token)
	if strings.Contains(lower, "passive") {
		switch {
		case strings.Contains(lower, "trn"):
			return &SubCommand{Type: "Translation", Subtype: "Passive", Token: token, Line: line}, nil
		case strings.Contains(lower, "att"):
			return &SubCommand{Type: "Attitude", Subtype: "Passive", Token: token, Line: line}, nil
		}
	}

	return nil, diagnostic.Errorf(diagnostic.CodeLexical, line, "Command", token, "unrecognized sub-command")
}
