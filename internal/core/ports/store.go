package ports

// ManifestStore defines the interface for reading and writing the generated manifest.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ManifestStore interface {
	// Read returns the current manifest content, or nil if it does not exist.
	Read(path string) ([]byte, error)
	// Write overwrites the manifest and reports whether the content changed.
	Write(path string, data []byte) (bool, error)
}
