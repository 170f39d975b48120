package ports

import "context"

// ProjectBuilder builds the project's own installable artifact. Building from
// source is an external concern; the bundler only consumes the reported
// filename.
//
//go:generate go run go.uber.org/mock/mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type ProjectBuilder interface {
	// BuildArtifact builds the project rooted at projectDir into distDir and
	// returns the artifact filename written there.
	BuildArtifact(ctx context.Context, projectDir, distDir string) (string, error)
}
