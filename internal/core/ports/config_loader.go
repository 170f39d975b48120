package ports

import "go.trai.ch/bale/internal/core/domain"

// ConfigLoader loads the project definition and its locked dependency graph.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the project file and the lockfile from the given working
	// directory and returns the project plus the graph index built from it.
	Load(cwd string) (*domain.Project, *domain.Index, error)
}
