package convert

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ResultFunc receives the outcome of every conversion made while watching.
type ResultFunc func(input string, res *Result, err error)

// Watch converts every input of the mission directory once, then converts
// each input again whenever it is created or written, until ctx is done.
// Conversion errors go to fn and do not stop the watch.
func (c *Converter) Watch(ctx context.Context, dir string, fn ResultFunc) error {
	inDir := MissionDir(dir)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	// Added before the first pass; changes made during it still arrive as events.
	if err := w.Add(inDir); err != nil {
		return fmt.Errorf("watching %s: %w", inDir, err)
	}

	inputs, err := c.Inputs(inDir)
	if err != nil {
		return err
	}

	for _, in := range inputs {
		c.convertOne(in, fn)
	}

	c.log.Info("Watching mission", zap.String("dir", inDir), zap.String("glob", c.cfg.InputGlob))

	for {
		select {
		case <-ctx.Done():
			c.log.Info("Watch stopped", zap.String("dir", inDir))

			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}

			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}

			if !c.matches(event.Name) {
				continue
			}

			c.log.Debug("Input changed", zap.String("input", event.Name), zap.Stringer("op", event.Op))
			c.convertOne(event.Name, fn)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}

			c.log.Warn("Watcher error", zap.Error(err))
		}
	}
}

func (c *Converter) matches(path string) bool {
	ok, err := filepath.Match(c.cfg.InputGlob, filepath.Base(path))

	return err == nil && ok
}

func (c *Converter) convertOne(in string, fn ResultFunc) {
	res, err := c.ConvertFile(in, OutputPath(in, c.cfg.OutputExt))
	if err != nil {
		c.log.Error("Conversion failed", zap.String("input", in), zap.Error(err))
	}

	if fn != nil {
		fn(in, res, err)
	}
}
