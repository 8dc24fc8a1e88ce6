package ports

import "go.trai.ch/reqsync/internal/core/domain"

// ManifestEncoder defines the interface for rendering a manifest.
//
//go:generate mockgen -source=encoder.go -destination=mocks/mock_encoder.go -package=mocks
type ManifestEncoder interface {
	// Encode renders the manifest. Equal manifests must produce identical bytes.
	Encode(m *domain.Manifest) ([]byte, error)
}
