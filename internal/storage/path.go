package storage

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// ValidatePath normalizes a client-supplied key and rejects anything that
// could address a file outside the storage root. It never touches the filesystem.
//
// The returned key is slash-separated, has no "." segments and no duplicate
// separators. A ".." segment is rejected even when cleaning would cancel it out.
func ValidatePath(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("%w: key is required", ErrInvalidPath)
	}
	if strings.ContainsRune(key, 0) {
		return "", fmt.Errorf("%w: key contains a NUL byte", ErrInvalidPath)
	}
	if strings.HasPrefix(key, "/") {
		return "", fmt.Errorf("%w: %q must be relative", ErrInvalidPath, key)
	}
	if hasParentSegment(key) {
		return "", fmt.Errorf("%w: %q contains a parent directory segment", ErrInvalidPath, key)
	}

	clean := path.Clean(key)
	if clean == "." {
		return "", fmt.Errorf("%w: %q does not name a file", ErrInvalidPath, key)
	}
	if strings.HasPrefix(clean, "/") || hasParentSegment(clean) {
		return "", fmt.Errorf("%w: %q escapes the storage root", ErrInvalidPath, key)
	}
	return clean, nil
}

func hasParentSegment(key string) bool {
	for _, seg := range strings.Split(key, "/") {
		if seg == ".." {
			return true
		}
	}
	return false
}

// resolve validates key and joins it to the root. The joined path must stay
// strictly below the root.
func (s *FileStore) resolve(key string) (string, string, error) {
	clean, err := ValidatePath(key)
	if err != nil {
		return "", "", err
	}

	full := filepath.Join(s.root, filepath.FromSlash(clean))
	if !strings.HasPrefix(full, s.root+string(filepath.Separator)) {
		return "", "", fmt.Errorf("%w: %q resolves outside the storage root", ErrInvalidPath, key)
	}
	return clean, full, nil
}
