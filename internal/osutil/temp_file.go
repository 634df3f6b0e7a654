// Package osutil holds filesystem helpers.
package osutil

import (
	"errors"
	"fmt"
	"os"
)

// WriteTempFile writes data to a new file in the default temporary
// directory and returns its path.
// The pattern is used as in [os.CreateTemp].
//
// The caller must call remove when the file is no longer needed.
func WriteTempFile(pattern string, data []byte) (path string, remove func(), err error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", nil, fmt.Errorf("create: %w", err)
	}
	path = f.Name()
	remove = func() { _ = os.Remove(path) }

	_, err = f.Write(data)
	if err = errors.Join(err, f.Close()); err != nil {
		remove()
		return "", nil, fmt.Errorf("write %v: %w", path, err)
	}
	return path, remove, nil
}
