// Package main provides the CLI entrypoint for txt2yaml.
//
// txt2yaml converts legacy DSM command files (Inp_DSM.txt) into YAML
// documents where every shared configuration is written once and aliased:
//   - convert: one input file to one YAML file
//   - mission: every input of a mission directory, optionally watching it
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"txt2yaml/internal/config"
	"txt2yaml/internal/convert"
	"txt2yaml/internal/diagnostic"
)

// cli holds the global flags and the logger shared by all commands.
type cli struct {
	verbose    bool
	configPath string

	logger *zap.Logger
	cfg    *config.Config
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "txt2yaml",
		Short: "Convert DSM command files to anchored YAML",
		Long: `txt2yaml reads the positional DSM command file of a mission and writes a
YAML document in which every controller, actuator, gain set, limit set,
sensor and navigation block is serialized once and referenced by alias.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zc := zap.NewProductionConfig()
			if c.verbose {
				zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}

			var err error

			c.logger, err = zc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			c.cfg, err = config.LoadFile(c.configPath)
			if err != nil {
				return err
			}

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "Settings file (default: built-in defaults)")

	root.AddCommand(c.newConvertCmd())
	root.AddCommand(c.newMissionCmd())

	return root
}

func (c *cli) converter() *convert.Converter {
	return convert.New(c.cfg, c.logger)
}

// reportDiagnostics prints every diagnostic carried by err and the
// warnings of res to stderr.
func reportDiagnostics(cmd *cobra.Command, res *convert.Result, err error) {
	w := cmd.ErrOrStderr()

	for _, e := range diagnostic.AsError(err) {
		fmt.Fprintf(w, "error: %s\n", e.Diagnostic)
	}

	if res == nil {
		return
	}

	for _, d := range res.Diagnostics.Warnings {
		fmt.Fprintf(w, "warning: %s\n", d)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
