package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// OutputPath returns the output path for input: the same directory and base
// name with ext replacing the input extension.
func OutputPath(input, ext string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ext
}

// WriteFileAtomic writes data to path through a temporary file in the same
// directory and a rename, so readers never see a partial document.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	err := os.MkdirAll(dir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}

	name := tmp.Name()

	cleanup := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(name)

		return err
	}

	if _, err := tmp.Write(data); err != nil {
		return cleanup(fmt.Errorf("writing %s: %w", path, err))
	}

	if err := tmp.Sync(); err != nil {
		return cleanup(fmt.Errorf("syncing %s: %w", path, err))
	}

	if err := tmp.Chmod(filePerm); err != nil {
		return cleanup(fmt.Errorf("setting mode of %s: %w", path, err))
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)

		return fmt.Errorf("closing %s: %w", path, err)
	}

	if err := os.Rename(name, path); err != nil {
		_ = os.Remove(name)

		return fmt.Errorf("replacing %s: %w", path, err)
	}

	return nil
}
