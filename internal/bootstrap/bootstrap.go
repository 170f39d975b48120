// Package bootstrap implements the target-machine runtime: verify the
// interpreter, extract the archive once, provision the environment once and
// delegate to the bundled entry point.
package bootstrap

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"github.com/danjacques/gofslock/fslock"
	"go.trai.ch/bale/internal/adapters/archive"
	"go.trai.ch/bale/internal/core/domain"
	"go.trai.ch/bale/internal/core/ports"
	"go.trai.ch/zerr"
)

// lockRetryDelay is how long a second invocation sleeps between attempts
// while another invocation holds the setup lock.
const lockRetryDelay = 100 * time.Millisecond

// versionRe extracts the reported interpreter version. The patch component
// is optional, some interpreters report only major.minor.
var versionRe = regexp.MustCompile(`Python (\d+\.\d+(?:\.\d+)?)`)

// Bootstrap runs produced executables. Per-run state lives under tmpRoot,
// keyed by the build identity baked into the payload, so the setup steps are
// idempotent for one build and never shared across builds.
type Bootstrap struct {
	runner  ports.CommandRunner
	env     ports.EnvProvisioner
	logger  ports.Logger
	tmpRoot string
}

// New creates a Bootstrap rooted at the system temporary directory.
func New(runner ports.CommandRunner, env ports.EnvProvisioner, logger ports.Logger) *Bootstrap {
	return NewWithTempRoot(runner, env, logger, os.TempDir())
}

// NewWithTempRoot creates a Bootstrap with an explicit state root.
func NewWithTempRoot(runner ports.CommandRunner, env ports.EnvProvisioner, logger ports.Logger, tmpRoot string) *Bootstrap {
	return &Bootstrap{runner: runner, env: env, logger: logger, tmpRoot: tmpRoot}
}

// Run executes the bundled program at execPath with the given arguments and
// returns its exit code. The interpreter is verified before any state is
// created on the machine.
func (b *Bootstrap) Run(ctx context.Context, execPath string, args []string) (int, error) {
	reader, err := archive.OpenExecutable(execPath)
	if err != nil {
		return 0, err
	}
	defer reader.Close() //nolint:errcheck // read-only handle

	payload, err := reader.Payload()
	if err != nil {
		return 0, err
	}

	if err := b.verifyInterpreter(ctx, payload); err != nil {
		return 0, err
	}

	envDir := filepath.Join(b.tmpRoot, payload.Identity)
	filesDir := envDir + ".files"
	if err := b.setupOnce(ctx, reader, payload, filesDir, envDir); err != nil {
		return 0, err
	}

	target := filepath.Join(envDir, "bin", payload.Entry)
	return b.runner.RunPassthrough(ctx, "", target, args...)
}

// verifyInterpreter checks the machine's interpreter against the payload's
// version constraint.
func (b *Bootstrap) verifyInterpreter(ctx context.Context, payload domain.Payload) error {
	constraint, err := domain.ParseConstraint(payload.Constraint)
	if err != nil {
		return err
	}

	res, err := b.runner.Run(ctx, "", payload.Interpreter, "--version")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "interpreter is not available"), "interpreter", payload.Interpreter)
	}
	if res.ExitCode != 0 {
		ierr := zerr.With(zerr.New("interpreter is not available"), "interpreter", payload.Interpreter)
		return zerr.With(ierr, "exit_code", res.ExitCode)
	}

	// Some interpreters print the version banner on stderr.
	m := versionRe.FindSubmatch(append(res.Stdout, res.Stderr...))
	if m == nil {
		return zerr.With(zerr.New("could not determine interpreter version"), "interpreter", payload.Interpreter)
	}
	version, err := domain.ParseVersion(string(m[1]))
	if err != nil {
		return err
	}

	if !constraint.Check(version) {
		verr := zerr.With(domain.ErrVersionConstraint, "constraint", payload.Constraint)
		return zerr.With(verr, "interpreter_version", version.String())
	}
	return nil
}

// setupOnce extracts the archive and provisions the environment, each at most
// once per build identity. Concurrent invocations of the same executable
// serialize on a file lock, so exactly one of them does the work and the rest
// observe the finished directories.
func (b *Bootstrap) setupOnce(ctx context.Context, reader *archive.Reader, payload domain.Payload, filesDir, envDir string) error {
	if err := os.MkdirAll(b.tmpRoot, 0o755); err != nil {
		return zerr.Wrap(err, "failed to create state root")
	}

	lockPath := filepath.Join(b.tmpRoot, payload.Identity+".lock")
	blocker := func() error {
		time.Sleep(lockRetryDelay)
		return ctx.Err()
	}

	err := fslock.WithBlocking(lockPath, blocker, func() error {
		if err := b.extractLocked(reader, filesDir); err != nil {
			return err
		}
		return b.provisionLocked(ctx, payload, filesDir, envDir)
	})
	if err != nil {
		return zerr.Wrap(err, "failed to set up runtime environment")
	}
	return nil
}

// extractLocked unpacks the archive into filesDir if it is not there yet.
// Extraction goes through a staging directory and a rename, so a crash never
// leaves a half-populated directory behind for the next invocation to trust.
func (b *Bootstrap) extractLocked(reader *archive.Reader, filesDir string) error {
	if _, err := os.Stat(filesDir); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return zerr.Wrap(err, "failed to inspect extraction directory")
	}

	b.logger.Info("extracting bundled files to " + filesDir)
	staging := filesDir + ".partial"
	if err := os.RemoveAll(staging); err != nil {
		return zerr.Wrap(err, "failed to clear staging directory")
	}
	if err := reader.ExtractTo(staging); err != nil {
		return err
	}
	if err := os.Rename(staging, filesDir); err != nil {
		return zerr.Wrap(err, "failed to finalize extraction")
	}
	return nil
}

// provisionLocked builds the isolated environment from the extracted
// artifacts if it does not exist yet.
func (b *Bootstrap) provisionLocked(ctx context.Context, payload domain.Payload, filesDir, envDir string) error {
	if _, err := os.Stat(envDir); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return zerr.Wrap(err, "failed to inspect environment directory")
	}

	artifacts, err := packagedArtifacts(filesDir)
	if err != nil {
		return err
	}
	return b.env.Provision(ctx, envDir, payload.Interpreter, artifacts)
}

// packagedArtifacts lists the extracted artifact files, sorted by name.
func packagedArtifacts(filesDir string) ([]string, error) {
	dir := filepath.Join(filesDir, domain.ArchivePrefix)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list extracted packages")
	}

	artifacts := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		artifacts = append(artifacts, filepath.Join(dir, e.Name()))
	}
	sort.Strings(artifacts)
	return artifacts, nil
}
