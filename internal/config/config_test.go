package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseDefaults(t *testing.T) {
	for _, data := range []string{"", "# nothing\n", "{}\n"} {
		cfg, err := Parse([]byte(data))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	}

	cfg := Default()
	assert.Equal(t, "#", cfg.CommentDelimiter)
	assert.Equal(t, DefaultIndent, cfg.Indent)
	assert.Equal(t, DefaultInputGlob, cfg.InputGlob)
	assert.Equal(t, DefaultOutputExt, cfg.OutputExt)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
}

func TestParseFull(t *testing.T) {
	data := `
comment_delimiter: "!"
indent: 4
input_glob: "*.txt"
output_ext: .yml
workers: 2
comments:
  start: DSM commands
  keys:
    Gains Configurations: Gain sets
    DSM Commands:
      - Per spacecraft
      - "# already a comment"
`

	cfg, err := Parse([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, "!", cfg.CommentDelimiter)
	assert.Equal(t, 4, cfg.Indent)
	assert.Equal(t, "*.txt", cfg.InputGlob)
	assert.Equal(t, ".yml", cfg.OutputExt)
	assert.Equal(t, 2, cfg.Workers)

	assert.Equal(t, "# DSM commands", cfg.Comments.Start.Comment())
	assert.Equal(t, map[string]string{
		"Gains Configurations": "# Gain sets",
		"DSM Commands":         "# Per spacecraft\n# already a comment",
	}, cfg.Comments.KeyComments())
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"indent too small", "indent: 1", "Indent"},
		{"indent too large", "indent: 9", "Indent"},
		{"long delimiter", `comment_delimiter: "//"`, "CommentDelimiter"},
		{"bad glob", `input_glob: "Inp_["`, "InputGlob"},
		{"bare extension", "output_ext: yaml", "OutputExt"},
		{"negative workers", "workers: -1", "Workers"},
		{"unknown comment key", "comments:\n  keys:\n    Bogus: x", "toplevelkey"},
		{"unknown field", "indnet: 2", "indnet"},
		{"wrong comment type", "comments:\n  start: {a: b}", "expected string or array"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFile(t *testing.T) {
	cfg, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "txt2yaml.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 8\n"), 0o644))

	cfg, err = LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Workers)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestStringOrArrayMarshal(t *testing.T) {
	single, err := yaml.Marshal(StringOrArray{"one"})
	require.NoError(t, err)
	assert.Equal(t, "one\n", string(single))

	multi, err := yaml.Marshal(StringOrArray{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "- a\n- b\n", string(multi))

	assert.Empty(t, StringOrArray{}.Comment())
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Comments.Keys = map[string]StringOrArray{"Limits Configurations": {"limits"}}

	data, err := Marshal(cfg)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
