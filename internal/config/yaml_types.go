package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"txt2yaml/internal/common"
)

// StringOrArray is a type that can be unmarshaled from either a string or an
// array of strings.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrArray.
// Outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if common.IsSingle(s) {
		return s[0], nil
	}

	return []string(s), nil
}

// Comment renders the lines as YAML comment text, one "# " line each.
// Lines that already start with '#' are kept as they are.
func (s StringOrArray) Comment() string {
	if common.IsEmpty(s) {
		return ""
	}

	lines := make([]string, 0, len(s))
	for _, raw := range s {
		for _, l := range strings.Split(raw, "\n") {
			if !strings.HasPrefix(l, "#") {
				l = strings.TrimRight("# "+l, " ")
			}

			lines = append(lines, l)
		}
	}

	return strings.Join(lines, "\n")
}
