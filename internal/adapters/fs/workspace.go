// Package fs provides build-machine filesystem helpers: the dist workspace
// and content digests.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/bale/internal/core/ports"
	"go.trai.ch/zerr"
)

// DistDirName is the working tree where executables, intermediate archives
// and the project artifact are written.
const DistDirName = "dist"

var _ ports.Workspace = (*Workspace)(nil)

// Workspace implements ports.Workspace rooted at a dist directory.
type Workspace struct {
	distDir string
	logger  ports.Logger
}

// NewWorkspace creates a Workspace rooted at the default dist directory.
func NewWorkspace(logger ports.Logger) *Workspace {
	return NewWorkspaceAt(DistDirName, logger)
}

// NewWorkspaceAt creates a Workspace rooted at distDir.
func NewWorkspaceAt(distDir string, logger ports.Logger) *Workspace {
	return &Workspace{distDir: distDir, logger: logger}
}

// DistDir returns the workspace root.
func (w *Workspace) DistDir() string {
	return w.distDir
}

// PackagesDir returns the directory where verified artifacts accumulate.
func (w *Workspace) PackagesDir() string {
	return filepath.Join(w.distDir, "packages")
}

// CleanPackages removes every previously downloaded artifact and recreates
// the packages directory, logging each removal.
func (w *Workspace) CleanPackages() error {
	dir := w.PackagesDir()
	entries, err := os.ReadDir(dir)
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		// Nothing to clean.
	case err != nil:
		return zerr.With(zerr.Wrap(err, "failed to read packages directory"), "path", dir)
	default:
		w.logger.Info("cleaning " + dir)
		for _, entry := range entries {
			w.logger.Info("  removing " + entry.Name())
			if err := os.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to remove artifact"), "name", entry.Name())
			}
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create packages directory"), "path", dir)
	}
	return nil
}

// Artifacts returns the paths of all regular files in the packages
// directory, sorted by name.
func (w *Workspace) Artifacts() ([]string, error) {
	dir := w.PackagesDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read packages directory"), "path", dir)
	}
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}
