package ports

import "context"

// EnvProvisioner creates the isolated runtime environment on the target
// machine and populates it from bundled artifacts only.
//
//go:generate go run go.uber.org/mock/mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type EnvProvisioner interface {
	// Provision creates a fresh environment for the given interpreter at
	// envDir and installs the artifact files into it offline, with
	// dependency resolution disabled: artifacts go in exactly as bundled,
	// nothing is re-resolved and nothing is fetched from a network.
	Provision(ctx context.Context, envDir, interpreter string, artifacts []string) error
}
