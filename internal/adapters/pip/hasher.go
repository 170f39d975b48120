package pip

import (
	"context"
	"regexp"
	"strings"

	"go.trai.ch/bale/internal/core/ports"
	"go.trai.ch/zerr"
)

// hashLineRe matches the "--hash=<algo>:<digest>" line of `pip hash` output.
var hashLineRe = regexp.MustCompile(`^--hash=(.+)$`)

var _ ports.ArtifactHasher = (*Hasher)(nil)

// Hasher implements ports.ArtifactHasher with `pip hash`, so the hash format
// matches the one recorded in the lockfile byte for byte.
type Hasher struct {
	runner ports.CommandRunner
}

// NewHasher creates a new Hasher.
func NewHasher(runner ports.CommandRunner) *Hasher {
	return &Hasher{runner: runner}
}

// Hash reports the content hash of the artifact at path.
func (h *Hasher) Hash(ctx context.Context, path string) (string, error) {
	res, err := h.runner.Run(ctx, "", "pip", "hash", path)
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		herr := zerr.With(zerr.New("pip hash failed"), "path", path)
		herr = zerr.With(herr, "exit_code", res.ExitCode)
		return "", zerr.With(herr, "stderr", strings.TrimSpace(string(res.Stderr)))
	}
	for line := range strings.Lines(string(res.Stdout)) {
		m := hashLineRe.FindStringSubmatch(strings.TrimRight(line, "\r\n"))
		if m != nil {
			return m[1], nil
		}
	}
	perr := zerr.With(zerr.New("could not parse hash from pip output"), "path", path)
	return "", zerr.With(perr, "output", string(res.Stdout))
}
