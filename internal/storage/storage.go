// Package storage implements the path-addressed file store: key validation,
// persistence under a single root directory, MIME lookup and recursive listing.
//
// The filesystem is the only source of truth. Nothing is indexed or cached,
// so every listing walks the whole tree.
package storage

import (
	"context"
	"time"
)

// StoredFile is a regular file under the storage root, with metadata read
// from the filesystem at query time.
type StoredFile struct {
	Path       string    `json:"path"`
	Filename   string    `json:"filename"`
	Size       int64     `json:"size"`
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
	MimeType   string    `json:"mimeType"`
}

// SaveResult describes what was committed by a Save call.
type SaveResult struct {
	Path string
	Size int64
}

// Store is the interface for path-addressed file operations.
// Every method validates its key before touching the filesystem.
type Store interface {
	// Save writes data under key, creating parent directories and replacing any existing file.
	Save(ctx context.Context, key string, data []byte) (SaveResult, error)
	// Read returns the full content stored under key.
	Read(ctx context.Context, key string) ([]byte, error)
	// Delete removes the file stored under key. Parent directories are kept.
	Delete(ctx context.Context, key string) error
	// Exists reports whether a regular file is stored under key. It never fails.
	Exists(ctx context.Context, key string) bool
	// Stat returns live metadata for the file stored under key.
	Stat(ctx context.Context, key string) (StoredFile, error)
	// ListAll returns every stored file, most recently modified first.
	ListAll(ctx context.Context) ([]StoredFile, error)
}
