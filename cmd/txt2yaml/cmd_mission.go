package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"txt2yaml/internal/convert"
)

func (c *cli) newMissionCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "mission <dir>",
		Short: "Convert every DSM command file of a mission directory",
		Long: `Converts every file matching input_glob in <dir>/InOut, or in <dir> when it
has no InOut subdirectory. Files are converted concurrently, at most
"workers" at a time; the first failure stops the batch.

With --watch the directory is converted once and then watched: every input
that is created or written is converted again until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			conv := c.converter()

			if watch {
				return conv.Watch(ctx, args[0], func(in string, res *convert.Result, err error) {
					reportDiagnostics(cmd, res, err)

					if err == nil {
						fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", in, res.Output)
					}
				})
			}

			results, err := conv.ConvertMission(ctx, args[0])
			reportDiagnostics(cmd, nil, err)

			if err != nil {
				return err
			}

			for _, res := range results {
				reportDiagnostics(cmd, res, nil)
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", res.Name, res.Output)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "converted %d file(s)\n", len(results))

			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep converting inputs as they change")

	return cmd
}
