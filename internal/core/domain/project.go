package domain

import (
	"maps"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// BundleGroup is the dependency group whose closure ships inside the
// produced executables. The remaining groups only participate in coverage
// validation.
const BundleGroup = "runtime"

// Project is the bundling subject: the root package plus its declared entry
// points, interpreter-version constraint and named dependency groups.
type Project struct {
	// Root is the project's own package record.
	Root *Package

	// Constraint is the interpreter-version constraint string embedded into
	// every bootstrap payload (e.g. "^3.9" or ">=3.9,<3.13").
	Constraint string

	// EntryPoints maps declared script names to their in-project targets.
	EntryPoints map[string]string

	// Groups maps group names to their direct requirement names.
	Groups map[string][]string
}

// SelectEntryPoints resolves a requested entry-point name to the list of
// entry points to build. An empty name selects every declared entry point.
// The result is name-sorted for deterministic build order.
func (p *Project) SelectEntryPoints(name string) ([]string, error) {
	if len(p.EntryPoints) == 0 {
		return nil, ErrNoEntryPoints
	}
	declared := slices.Sorted(maps.Keys(p.EntryPoints))
	if name == "" {
		return declared, nil
	}
	if _, ok := p.EntryPoints[name]; !ok {
		err := zerr.With(ErrUnknownEntryPoint, "entry_point", name)
		return nil, zerr.With(err, "declared", strings.Join(declared, ", "))
	}
	return []string{name}, nil
}
