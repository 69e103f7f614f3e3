// Package fsio is the file placement collaborator: whole-file reads and
// temp-file-plus-atomic-rename writes. On failure only a temp file can be
// left behind, never a partially written destination.
package fsio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

var ErrExists = errors.New("file exists")

// TmpSuffix is appended to the destination path while an output file is
// being staged.
const TmpSuffix = ".mmsftmp"

// ReadFile reads the whole file at path.
func ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteAtomic stages data in a temp file beside path and renames it into
// place. Without overwrite a pre-existing destination is refused and the
// temp file removed.
func WriteAtomic(path string, data []byte, overwrite bool) error {
	tmp := path + TmpSuffix
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Lstat(path); err == nil {
			os.Remove(tmp)
			return fmt.Errorf("%w: %s", ErrExists, path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			os.Remove(tmp)
			return err
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
