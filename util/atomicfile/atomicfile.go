// Package atomicfile writes files so that a crash or error never
// leaves a half-written file at the destination path.
package atomicfile

import (
	"io/ioutil"
	"os"
	"path/filepath"
)

// WriteFile writes data to path via a temporary file in the same
// directory, renamed over the destination only after the content has
// been flushed to disk. The destination either keeps its old content
// or holds all of data, never a mix.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	dir, base := filepath.Split(path)
	tmp, err := ioutil.TempFile(dir, "."+base+"-")
	if err != nil {
		return err
	}
	defer func() {
		if tmp != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	name := tmp.Name()
	// the deferred cleanup is only for the failure paths above
	tmp = nil
	return os.Rename(name, path)
}
