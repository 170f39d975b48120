// Package config loads the project manifest and the locked dependency graph.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"go.trai.ch/bale/internal/core/domain"
	"go.trai.ch/bale/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// ProjectFilename is the project manifest consumed from the working directory.
	ProjectFilename = "bundle.yaml"

	// LockFilename is the locked dependency graph, produced by an external
	// resolver and consumed read-only here.
	LockFilename = "bundle.lock"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader from two YAML files.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the project manifest and the lockfile from cwd and builds the
// graph index. The constraint string is parsed once here so a bad project
// file fails before any work starts.
func (l *Loader) Load(cwd string) (*domain.Project, *domain.Index, error) {
	var bf bundleFile
	if err := readYAML(filepath.Join(cwd, ProjectFilename), &bf); err != nil {
		return nil, nil, err
	}
	if bf.Name == "" || bf.Version == "" {
		return nil, nil, zerr.With(zerr.New("project manifest needs name and version"), "file", ProjectFilename)
	}
	if _, err := domain.ParseConstraint(bf.Python); err != nil {
		return nil, nil, zerr.Wrap(err, "bad interpreter constraint in project manifest")
	}

	var lf lockFile
	if err := readYAML(filepath.Join(cwd, LockFilename), &lf); err != nil {
		return nil, nil, err
	}

	root := &domain.Package{Name: bf.Name, Version: bf.Version}
	packages := make([]*domain.Package, 0, len(lf.Packages))
	for _, entry := range lf.Packages {
		artifacts := make([]domain.Artifact, 0, len(entry.Artifacts))
		for _, a := range entry.Artifacts {
			artifacts = append(artifacts, domain.Artifact{File: a.File, Hash: a.Hash})
		}
		packages = append(packages, &domain.Package{
			Name:      entry.Name,
			Version:   entry.Version,
			Requires:  entry.Requires,
			Artifacts: artifacts,
		})
	}

	ix, err := domain.NewIndex(root, packages)
	if err != nil {
		return nil, nil, err
	}
	l.logger.Info("loaded locked graph with " + strconv.Itoa(len(packages)) + " packages")

	project := &domain.Project{
		Root:        root,
		Constraint:  bf.Python,
		EntryPoints: bf.Scripts,
		Groups:      bf.Groups,
	}
	return project, ix, nil
}

func readYAML(path string, out any) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return zerr.Wrap(err, "failed to read "+filepath.Base(path))
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return zerr.Wrap(err, "failed to parse "+filepath.Base(path))
	}
	return nil
}
