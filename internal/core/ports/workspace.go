package ports

// Workspace manages the dist working tree on the build machine.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// DistDir is where executables, intermediate archives and the project
	// artifact are written.
	DistDir() string

	// PackagesDir is where verified dependency artifacts accumulate.
	PackagesDir() string

	// CleanPackages removes every previously downloaded artifact and
	// recreates the packages directory.
	CleanPackages() error

	// Artifacts returns the paths of all files currently in the packages
	// directory, sorted by name.
	Artifacts() ([]string, error)
}
