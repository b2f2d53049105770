package lexer

import (
	"slices"
	"strings"

	"txt2yaml/internal/record"
)

// EventPrefix introduces a timed command-event line.
const EventPrefix = "DSM_Cmd"

type prefixRule struct {
	prefix string
	family Family
	kind   record.Kind
}

// rules holds every line tag, longest first, so a tag that extends another
// (e.g. "SensorSet_" over "Sensor") is tested before the shorter one.
var rules = buildRules()

func buildRules() []prefixRule {
	out := []prefixRule{{prefix: EventPrefix, family: FamilyEvent}}

	for _, k := range record.Kinds() {
		if p := k.Prefix(); p != "" {
			out = append(out, prefixRule{prefix: p, family: FamilyConfig, kind: k})
		}
	}

	slices.SortStableFunc(out, func(a, b prefixRule) int {
		return len(b.prefix) - len(a.prefix)
	})

	return out
}

// Classify returns the family and, for configuration lines, the record kind
// introduced by token.
func Classify(token string) (Family, record.Kind, bool) {
	for _, r := range rules {
		if strings.HasPrefix(token, r.prefix) {
			return r.family, r.kind, true
		}
	}

	return 0, 0, false
}

// Prefixes returns every recognized line tag, longest first.
func Prefixes() []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.prefix
	}

	return out
}
