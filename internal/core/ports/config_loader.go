package ports

import "go.trai.ch/reqsync/internal/core/domain"

// ConfigLoader defines the interface for loading the generator configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves the configuration for cwd.
	// If explicitPath is set it is used instead of discovering reqsync.yaml.
	Load(cwd, explicitPath string) (*domain.Config, error)
}
