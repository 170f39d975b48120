// Package pip shells out to pip for artifact downloads, content hashes and
// the project's own wheel build.
package pip

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/bale/internal/core/domain"
	"go.trai.ch/bale/internal/core/ports"
	"go.trai.ch/zerr"
)

// savedLineRe matches pip's "Saved <path>" report line. The requested
// name==version does not always map 1:1 to the filename written (platform
// tags), so this line is the authoritative source of the artifact filename.
var savedLineRe = regexp.MustCompile(`^Saved (.+)$`)

var _ ports.ArtifactFetcher = (*Fetcher)(nil)

// Fetcher implements ports.ArtifactFetcher with `pip download`.
type Fetcher struct {
	runner ports.CommandRunner
	logger ports.Logger
}

// NewFetcher creates a new Fetcher.
func NewFetcher(runner ports.CommandRunner, logger ports.Logger) *Fetcher {
	return &Fetcher{runner: runner, logger: logger}
}

// Fetch downloads exactly the package's own artifact into destDir.
// Dependencies are enumerated separately by the closure, so --no-deps keeps
// this a single-artifact fetch. On failure, both captured output streams are
// surfaced before the error propagates; there is no retry.
func (f *Fetcher) Fetch(ctx context.Context, pkg *domain.Package, destDir string) (string, error) {
	res, err := f.runner.Run(ctx, destDir, "pip", "download", pkg.Spec(), "--no-deps")
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		f.logger.Warn("pip download stdout: " + strings.TrimSpace(string(res.Stdout)))
		f.logger.Warn("pip download stderr: " + strings.TrimSpace(string(res.Stderr)))
		ferr := zerr.With(domain.ErrFetchFailed, "package", pkg.Spec())
		return "", zerr.With(ferr, "exit_code", res.ExitCode)
	}
	file, ok := parseSavedLine(string(res.Stdout))
	if !ok {
		perr := zerr.With(zerr.New("could not parse artifact filename from pip output"), "package", pkg.Spec())
		return "", zerr.With(perr, "output", string(res.Stdout))
	}
	return file, nil
}

// parseSavedLine extracts the filename component of the first "Saved" line.
func parseSavedLine(out string) (string, bool) {
	for line := range strings.Lines(out) {
		m := savedLineRe.FindStringSubmatch(strings.TrimRight(line, "\r\n"))
		if m != nil {
			return filepath.Base(m[1]), true
		}
	}
	return "", false
}
