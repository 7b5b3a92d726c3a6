package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"syscall"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// FileStore implements Store on a local directory tree. The root does not have
// to exist yet; it is created on the first Save.
type FileStore struct {
	root string
}

var _ Store = (*FileStore)(nil)

// NewFileStore returns a FileStore rooted at the absolute form of root.
func NewFileStore(root string) (*FileStore, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, fmt.Errorf("storage root is required")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve storage root: %w", err)
	}
	if abs == filepath.VolumeName(abs)+string(filepath.Separator) {
		return nil, fmt.Errorf("storage root must not be the filesystem root")
	}
	return &FileStore{root: abs}, nil
}

// Root returns the absolute storage root.
func (s *FileStore) Root() string {
	return s.root
}

// Save writes data under key, replacing any existing file. The returned size
// comes from a stat after the write.
func (s *FileStore) Save(ctx context.Context, key string, data []byte) (SaveResult, error) {
	if err := ctx.Err(); err != nil {
		return SaveResult{}, err
	}
	clean, full, err := s.resolve(key)
	if err != nil {
		return SaveResult{}, err
	}

	if err := os.MkdirAll(filepath.Dir(full), dirPerm); err != nil {
		return SaveResult{}, newStorageError("save", clean, fmt.Errorf("create directory: %w", err))
	}
	// replace a link at the key instead of writing through it
	if info, err := os.Lstat(full); err == nil && info.Mode()&fs.ModeSymlink != 0 {
		if err := os.Remove(full); err != nil {
			return SaveResult{}, newStorageError("save", clean, fmt.Errorf("remove link: %w", err))
		}
	}
	if err := os.WriteFile(full, data, filePerm); err != nil {
		return SaveResult{}, newStorageError("save", clean, fmt.Errorf("write file: %w", err))
	}

	info, err := os.Stat(full)
	if err != nil {
		return SaveResult{}, newStorageError("save", clean, fmt.Errorf("stat written file: %w", err))
	}
	return SaveResult{Path: clean, Size: info.Size()}, nil
}

// Read returns the content stored under key. A missing file, or a directory
// at that key, yields a StorageError that satisfies IsNotFound.
func (s *FileStore) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	clean, full, err := s.resolve(key)
	if err != nil {
		return nil, err
	}

	if _, err := s.statRegular(clean, full); err != nil {
		return nil, newStorageError("read", clean, err)
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, newStorageError("read", clean, err)
	}
	return data, nil
}

// Delete removes the file stored under key. Empty parent directories are left in place.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	clean, full, err := s.resolve(key)
	if err != nil {
		return err
	}

	if _, err := s.statRegular(clean, full); err != nil {
		return newStorageError("delete", clean, err)
	}
	if err := os.Remove(full); err != nil {
		return newStorageError("delete", clean, err)
	}
	return nil
}

// Exists reports whether a regular file is stored under key. Invalid keys and
// any stat failure count as absent.
func (s *FileStore) Exists(ctx context.Context, key string) bool {
	if ctx.Err() != nil {
		return false
	}
	clean, full, err := s.resolve(key)
	if err != nil {
		return false
	}
	_, err = s.statRegular(clean, full)
	return err == nil
}

// Stat returns live metadata for the file stored under key.
func (s *FileStore) Stat(ctx context.Context, key string) (StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return StoredFile{}, err
	}
	clean, full, err := s.resolve(key)
	if err != nil {
		return StoredFile{}, err
	}

	info, err := s.statRegular(clean, full)
	if err != nil {
		return StoredFile{}, newStorageError("stat", clean, err)
	}
	return newStoredFile(clean, full, info), nil
}

// statRegular only accepts a regular file at the key itself. Links are not
// followed, matching what ListAll reports.
func (s *FileStore) statRegular(clean, full string) (fs.FileInfo, error) {
	info, err := os.Lstat(full)
	if err != nil {
		if errors.Is(err, syscall.ENOTDIR) || errors.Is(err, syscall.ENAMETOOLONG) {
			return nil, fmt.Errorf("%s: %w: %w", clean, fs.ErrNotExist, err)
		}
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file: %w", clean, fs.ErrNotExist)
	}
	return info, nil
}

func newStoredFile(key, full string, info fs.FileInfo) StoredFile {
	name := path.Base(key)
	return StoredFile{
		Path:       key,
		Filename:   name,
		Size:       info.Size(),
		CreatedAt:  birthTime(full, info),
		ModifiedAt: info.ModTime(),
		MimeType:   MimeType(name),
	}
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
