package storage

import (
	"cmp"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// ListAll walks the whole storage root and returns one record per regular file,
// ordered by modification time descending with ties broken by path descending.
//
// A missing root is an empty store. Entries deleted while the walk is running
// are skipped; any other walk error aborts the listing.
func (s *FileStore) ListAll(ctx context.Context) ([]StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(s.root); err != nil {
		if isNotExist(err) {
			return []StoredFile{}, nil
		}
		return nil, newStorageError("list", ".", err)
	}

	// the trailing separator makes the walk descend when the root is itself a link
	walkRoot := s.root + string(filepath.Separator)
	files := []StoredFile{}
	err := filepath.WalkDir(walkRoot, func(full string, d fs.DirEntry, err error) error {
		if err != nil {
			if full != walkRoot && isNotExist(err) {
				return nil
			}
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			if isNotExist(err) {
				return nil
			}
			return err
		}
		rel, err := filepath.Rel(s.root, full)
		if err != nil {
			return err
		}
		files = append(files, newStoredFile(filepath.ToSlash(rel), full, info))
		return nil
	})
	if err != nil {
		return nil, newStorageError("list", ".", err)
	}

	sortNewestFirst(files)
	return files, nil
}

func sortNewestFirst(files []StoredFile) {
	slices.SortFunc(files, func(a, b StoredFile) int {
		if c := b.ModifiedAt.Compare(a.ModifiedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.Path, a.Path)
	})
}
