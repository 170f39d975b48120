// Package ports defines the core interfaces for the application.
package ports

import "context"

// CommandResult is the outcome of one external command invocation.
type CommandResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// CommandRunner runs external commands on behalf of the fetcher, the
// packager's collaborators and the bootstrap, so all of them are testable
// without spawning real processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes name with args in dir (empty dir means the current
	// directory), capturing both output streams. A non-zero exit status is
	// reported through CommandResult, not through the error; the error is
	// reserved for commands that could not run at all.
	Run(ctx context.Context, dir, name string, args ...string) (CommandResult, error)

	// RunPassthrough executes name with args wired to this process's own
	// stdin, stdout and stderr, and returns the child's exit code.
	RunPassthrough(ctx context.Context, dir, name string, args ...string) (int, error)
}
