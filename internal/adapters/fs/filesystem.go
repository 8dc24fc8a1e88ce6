// Package fs provides filesystem access and the manifest store.
package fs

import (
	iofs "io/fs"
	"os"
)

// FileSystem abstracts filesystem operations for testability.
type FileSystem interface {
	// Stat returns file info for the given path.
	Stat(path string) (iofs.FileInfo, error)
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// WriteFile truncates and writes the file at path.
	WriteFile(path string, data []byte, perm os.FileMode) error
	// MkdirAll creates a directory and its parents.
	MkdirAll(path string, perm os.FileMode) error
}

// OSFS implements FileSystem using the standard library.
type OSFS struct{}

// NewOSFS creates a new OSFS instance.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// Stat returns file info for the given path.
func (o *OSFS) Stat(path string) (iofs.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads the entire file at path.
func (o *OSFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- path comes from the resolved configuration
	return os.ReadFile(path)
}

// WriteFile truncates and writes the file at path.
func (o *OSFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	// #nosec G306 -- the manifest is meant to be world readable
	return os.WriteFile(path, data, perm)
}

// MkdirAll creates a directory and its parents.
func (o *OSFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}
