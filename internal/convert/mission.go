package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MissionSubdir is the mission subdirectory that holds input files.
const MissionSubdir = "InOut"

// MissionDir returns the directory holding a mission's input files: dir's
// InOut subdirectory when it exists, dir itself otherwise.
func MissionDir(dir string) string {
	sub := filepath.Join(dir, MissionSubdir)
	if fi, err := os.Stat(sub); err == nil && fi.IsDir() {
		return sub
	}

	return dir
}

// Inputs lists the files in dir matching the configured glob, sorted.
func (c *Converter) Inputs(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, c.cfg.InputGlob))
	if err != nil {
		return nil, fmt.Errorf("listing inputs: %w", err)
	}

	out := matches[:0]

	for _, m := range matches {
		if fi, err := os.Stat(m); err == nil && fi.Mode().IsRegular() {
			out = append(out, m)
		}
	}

	slices.Sort(out)

	return out, nil
}

// ConvertMission converts every input of the mission directory concurrently,
// at most Workers at a time. The first failure cancels conversions that have
// not started yet and is returned; results are in input order.
func (c *Converter) ConvertMission(ctx context.Context, dir string) ([]*Result, error) {
	inDir := MissionDir(dir)

	inputs, err := c.Inputs(inDir)
	if err != nil {
		return nil, err
	}

	c.log.Info("Converting mission", zap.String("dir", inDir), zap.Int("inputs", len(inputs)))

	results := make([]*Result, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.Workers)

	for i, in := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := c.ConvertFile(in, OutputPath(in, c.cfg.OutputExt))
			if err != nil {
				return err
			}

			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
