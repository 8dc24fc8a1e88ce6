package fs

import (
	"errors"
	iofs "io/fs"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/reqsync/internal/core/domain"
	"go.trai.ch/reqsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestStore = (*Store)(nil)

// Store implements ports.ManifestStore by overwriting the target file in place.
type Store struct {
	fs FileSystem
}

// NewStore creates a new Store on top of fsys.
func NewStore(fsys FileSystem) *Store {
	return &Store{fs: fsys}
}

// Read returns the current manifest content, or nil if the file does not exist.
func (s *Store) Read(path string) ([]byte, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}
	return data, nil
}

// Write overwrites the manifest at path.
// Content with the same length and XXHash as the file on disk is treated as
// identical, left untouched and reported as unchanged.
func (s *Store) Write(path string, data []byte) (bool, error) {
	current, err := s.Read(path)
	if err != nil {
		return false, err
	}
	if current != nil && len(current) == len(data) && Sum(current) == Sum(data) {
		return false, nil
	}

	if err := s.fs.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", path)
	}
	if err := s.fs.WriteFile(path, data, domain.FilePerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", path)
	}
	return true, nil
}

// Sum returns the XXHash of data.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
