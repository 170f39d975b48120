package pip

import (
	"context"
	"strings"

	"go.trai.ch/bale/internal/core/domain"
	"go.trai.ch/bale/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProjectBuilder = (*Builder)(nil)

// Builder implements ports.ProjectBuilder with `pip wheel`.
type Builder struct {
	runner ports.CommandRunner
	logger ports.Logger
}

// NewBuilder creates a new Builder.
func NewBuilder(runner ports.CommandRunner, logger ports.Logger) *Builder {
	return &Builder{runner: runner, logger: logger}
}

// BuildArtifact builds the project's own wheel into distDir and returns the
// filename pip reports.
func (b *Builder) BuildArtifact(ctx context.Context, projectDir, distDir string) (string, error) {
	res, err := b.runner.Run(ctx, projectDir, "pip", "wheel", "--no-deps", "--wheel-dir", distDir, ".")
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		b.logger.Warn("pip wheel stdout: " + strings.TrimSpace(string(res.Stdout)))
		b.logger.Warn("pip wheel stderr: " + strings.TrimSpace(string(res.Stderr)))
		berr := zerr.With(domain.ErrArtifactBuildFailed, "project_dir", projectDir)
		return "", zerr.With(berr, "exit_code", res.ExitCode)
	}
	file, ok := parseSavedLine(string(res.Stdout))
	if !ok {
		perr := zerr.With(zerr.New("could not parse wheel filename from pip output"), "project_dir", projectDir)
		return "", zerr.With(perr, "output", string(res.Stdout))
	}
	b.logger.Info("built project artifact " + file)
	return file, nil
}
