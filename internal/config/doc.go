// Package config loads the converter settings file.
//
// A settings file is optional. Every key has a default, so an empty file and
// no file at all behave the same:
//
//	comment_delimiter: "#"
//	indent: 2
//	input_glob: Inp_DSM*.txt
//	output_ext: .yaml
//	workers: 4
//	comments:
//	  start: DSM command configuration
//	  keys:
//	    Controller Configurations:
//	      - Controllers combine a gain set and a limit set
//	      - and are shared by every command that names them.
package config
