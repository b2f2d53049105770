package config

import "txt2yaml/internal/lexer"

// Defaults applied to unset keys.
const (
	DefaultIndent    = 2
	DefaultInputGlob = "Inp_DSM*.txt"
	DefaultOutputExt = ".yaml"
	DefaultWorkers   = 4
)

// Config holds the converter settings.
type Config struct {
	// CommentDelimiter starts the trailing comment of an input line.
	CommentDelimiter string `yaml:"comment_delimiter" validate:"len=1"`
	// Indent is the number of spaces per YAML nesting level.
	Indent int `yaml:"indent" validate:"gte=2,lte=8"`
	// InputGlob selects the files converted in mission mode.
	InputGlob string `yaml:"input_glob" validate:"required,glob"`
	// OutputExt replaces the input extension of converted files.
	OutputExt string `yaml:"output_ext" validate:"required,startswith=."`
	// Workers bounds concurrent conversions in mission mode.
	Workers int `yaml:"workers" validate:"gte=1,lte=64"`
	// Comments are written into every converted document.
	Comments Comments `yaml:"comments"`
}

// Comments holds the document start comment and the comments written before
// top-level keys.
type Comments struct {
	Start StringOrArray            `yaml:"start,omitempty"`
	Keys  map[string]StringOrArray `yaml:"keys,omitempty" validate:"dive,keys,toplevelkey,endkeys"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// applyDefaults fills in default values for unset fields.
func applyDefaults(cfg *Config) {
	if cfg.CommentDelimiter == "" {
		cfg.CommentDelimiter = lexer.DefaultCommentDelimiter
	}

	if cfg.Indent == 0 {
		cfg.Indent = DefaultIndent
	}

	if cfg.InputGlob == "" {
		cfg.InputGlob = DefaultInputGlob
	}

	if cfg.OutputExt == "" {
		cfg.OutputExt = DefaultOutputExt
	}

	if cfg.Workers == 0 {
		cfg.Workers = DefaultWorkers
	}
}

// KeyComments returns the per-key comments rendered as YAML comment text.
func (c Comments) KeyComments() map[string]string {
	out := make(map[string]string, len(c.Keys))
	for k, v := range c.Keys {
		if text := v.Comment(); text != "" {
			out[k] = text
		}
	}

	return out
}
