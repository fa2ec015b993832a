// Package output writes generated files.
package output

import (
	"os"
	"path/filepath"

	"answersite/internal/loader"
)

// WriteFile creates the parent directory and writes content to path,
// truncating any existing file. Failures are reported as *loader.IOError.
func WriteFile(path, content string) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &loader.IOError{Op: "mkdir", Path: dir, Err: err}
	}

	f, err := os.Create(path)
	if err != nil {
		return &loader.IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &loader.IOError{Op: "close", Path: path, Err: cerr}
		}
	}()

	if _, err := f.WriteString(content); err != nil {
		return &loader.IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
