package ports

import (
	"context"

	"go.trai.ch/bale/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks

// ArtifactFetcher downloads one package's artifact.
type ArtifactFetcher interface {
	// Fetch downloads exactly pkg's own artifact (never its dependencies)
	// into destDir and returns the concrete filename written there. The
	// requested name==version does not always map 1:1 to the filename, so
	// the operation's own report is authoritative.
	Fetch(ctx context.Context, pkg *domain.Package, destDir string) (string, error)
}

// ArtifactHasher reports the content hash of a local artifact file.
type ArtifactHasher interface {
	Hash(ctx context.Context, path string) (string, error)
}
