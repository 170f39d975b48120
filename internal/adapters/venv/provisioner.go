// Package venv provisions isolated interpreter environments and installs
// the bundled artifacts into them.
package venv

import (
	"context"
	"path/filepath"
	"strings"

	"go.trai.ch/bale/internal/core/domain"
	"go.trai.ch/bale/internal/core/ports"
	"go.trai.ch/zerr"
)

type Provisioner struct {
	runner ports.CommandRunner
	logger ports.Logger
}

func NewProvisioner(runner ports.CommandRunner, logger ports.Logger) *Provisioner {
	return &Provisioner{runner: runner, logger: logger}
}

// Provision creates a virtual environment at envDir and installs the given
// artifact files into it. Installation is hermetic, nothing is resolved or
// fetched from an index.
func (p *Provisioner) Provision(ctx context.Context, envDir string, interpreter string, artifacts []string) error {
	p.logger.Info("creating virtualenv at " + envDir)
	res, err := p.runner.Run(ctx, "", interpreter, "-m", "venv", envDir)
	if err != nil {
		return zerr.Wrap(err, "failed to create virtualenv")
	}
	if res.ExitCode != 0 {
		perr := zerr.With(domain.ErrProvisionFailed, "step", "venv")
		perr = zerr.With(perr, "exit_code", res.ExitCode)
		return zerr.With(perr, "stderr", strings.TrimSpace(string(res.Stderr)))
	}

	pip := filepath.Join(envDir, "bin", "pip3")
	args := make([]string, 0, len(artifacts)+3)
	args = append(args, "install")
	args = append(args, artifacts...)
	args = append(args, "--no-deps", "--no-index")

	p.logger.Info("installing bundled packages")
	res, err = p.runner.Run(ctx, "", pip, args...)
	if err != nil {
		return zerr.Wrap(err, "failed to install bundled packages")
	}
	if res.ExitCode != 0 {
		perr := zerr.With(domain.ErrProvisionFailed, "step", "install")
		perr = zerr.With(perr, "exit_code", res.ExitCode)
		return zerr.With(perr, "stderr", strings.TrimSpace(string(res.Stderr)))
	}
	return nil
}
