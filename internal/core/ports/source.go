package ports

import "go.trai.ch/reqsync/internal/core/domain"

// RequirementSource defines the interface for reading requirements files.
//
//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type RequirementSource interface {
	// Load reads the file at path and every file it includes.
	Load(path string, enc domain.Encoding) (*domain.SourceSet, error)
}
