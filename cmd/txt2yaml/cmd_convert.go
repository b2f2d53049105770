package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"txt2yaml/internal/convert"
)

// stdoutPath selects standard output as the conversion target.
const stdoutPath = "-"

func (c *cli) newConvertCmd() *cobra.Command {
	var (
		output string
		dump   bool
	)

	cmd := &cobra.Command{
		Use:   "convert <input>",
		Short: "Convert one DSM command file",
		Long: `Converts one DSM command file. The output defaults to the input path with
the configured output extension; "-o -" writes the document to stdout.
Nothing is written when the input has errors.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := args[0]
			if output == "" {
				output = convert.OutputPath(in, c.cfg.OutputExt)
			}

			conv := c.converter()

			var (
				res *convert.Result
				err error
			)

			if output == stdoutPath {
				res, err = convertToStdout(cmd, conv, in)
			} else {
				res, err = conv.ConvertFile(in, output)
			}

			reportDiagnostics(cmd, res, err)

			if err != nil {
				return err
			}

			if dump {
				cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
				cfg.Fdump(cmd.ErrOrStderr(), res.Document)
			}

			if output != stdoutPath {
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%d records, %d anchors)\n",
					in, output, res.Records, res.Anchors)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", `Output path, "-" for stdout`)
	cmd.Flags().BoolVar(&dump, "dump", false, "Dump the resolved document to stderr")

	return cmd
}

func convertToStdout(cmd *cobra.Command, conv *convert.Converter, in string) (*convert.Result, error) {
	f, err := os.Open(in)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	res, err := conv.Convert(f, in)
	if err != nil {
		return nil, err
	}

	if _, err := cmd.OutOrStdout().Write(res.YAML); err != nil {
		return nil, fmt.Errorf("writing output: %w", err)
	}

	return res, nil
}
