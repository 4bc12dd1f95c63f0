package ports

import "go.trai.ch/dose/internal/core/domain"

// ConfigLoader loads the tool configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration discovered from the given working
	// directory. A missing config file yields the defaults, not an error.
	Load(cwd string) (domain.Config, error)
}
