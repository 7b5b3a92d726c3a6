package storage

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrInvalidPath is returned when a key is empty, absolute, or tries to leave the storage root.
var ErrInvalidPath = errors.New("invalid path")

// StorageError wraps an underlying I/O failure together with the operation and key involved.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func newStorageError(op, key string, err error) *StorageError {
	return &StorageError{Op: op, Path: key, Err: err}
}

// IsNotFound returns true when err means nothing is stored under the requested key.
func IsNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// IsInvalidPath returns true when err is a key validation failure.
func IsInvalidPath(err error) bool {
	return errors.Is(err, ErrInvalidPath)
}
