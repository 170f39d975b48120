package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Index is the in-memory lookup from package name to package record, built
// once per bundling run from the locked graph. It owns the Package records
// for the duration of that run and is read-only afterwards.
type Index struct {
	root     *Package
	packages map[string]*Package
}

// NewIndex builds an Index from the root package and the full set of locked
// packages. The root is registered under its own name so traversals can
// recognize and skip it.
func NewIndex(root *Package, packages []*Package) (*Index, error) {
	ix := &Index{
		root:     root,
		packages: make(map[string]*Package, len(packages)+1),
	}
	ix.packages[root.Name] = root
	for _, pkg := range packages {
		if _, exists := ix.packages[pkg.Name]; exists {
			return nil, zerr.With(ErrDuplicatePackage, "package", pkg.Name)
		}
		ix.packages[pkg.Name] = pkg
	}
	return ix, nil
}

// Root returns the project's own package record.
func (ix *Index) Root() *Package {
	return ix.root
}

// Lookup returns the package record for name, if locked.
func (ix *Index) Lookup(name string) (*Package, bool) {
	pkg, ok := ix.packages[name]
	return pkg, ok
}

// Locked returns every locked package except the root, sorted by name.
func (ix *Index) Locked() []*Package {
	pkgs := make([]*Package, 0, len(ix.packages)-1)
	for name, pkg := range ix.packages {
		if name == ix.root.Name {
			continue
		}
		pkgs = append(pkgs, pkg)
	}
	slices.SortFunc(pkgs, func(a, b *Package) int {
		return strings.Compare(a.Name, b.Name)
	})
	return pkgs
}

// Closure computes the transitive set of non-root packages reachable from
// the given direct requirement names. The traversal is depth-first with a
// visited set, so shared dependencies (diamonds) are visited once and a
// back-edge cannot re-enter a package; the root is skipped wherever it
// appears. The result is a fresh set, independent of traversal order.
func (ix *Index) Closure(direct []string) (map[string]*Package, error) {
	visited := make(map[string]*Package)
	for _, name := range direct {
		if err := ix.walk(name, visited); err != nil {
			return nil, err
		}
	}
	return visited, nil
}

func (ix *Index) walk(name string, visited map[string]*Package) error {
	if name == ix.root.Name {
		return nil
	}
	if _, seen := visited[name]; seen {
		return nil
	}
	pkg, ok := ix.packages[name]
	if !ok {
		return zerr.With(ErrPackageNotLocked, "package", name)
	}
	visited[name] = pkg
	for _, dep := range pkg.Requires {
		if err := ix.walk(dep, visited); err != nil {
			return err
		}
	}
	return nil
}

// ValidateCoverage asserts that the union of every group closure equals the
// full locked package set minus the root. Any asymmetric difference is fatal:
// the build must not silently omit or duplicate a package.
func ValidateCoverage(ix *Index, closures map[string]map[string]*Package) error {
	covered := make(map[string]bool)
	for _, closure := range closures {
		for name := range closure {
			covered[name] = true
		}
	}

	var unreachable []string
	for _, pkg := range ix.Locked() {
		if !covered[pkg.Name] {
			unreachable = append(unreachable, pkg.Name)
		}
	}

	var unlocked []string
	for name := range covered {
		if _, ok := ix.packages[name]; !ok || name == ix.root.Name {
			unlocked = append(unlocked, name)
		}
	}
	slices.Sort(unlocked)

	if len(unreachable) == 0 && len(unlocked) == 0 {
		return nil
	}

	err := error(ErrCoverage)
	if len(unreachable) > 0 {
		err = zerr.With(err, "unreachable", strings.Join(unreachable, ", "))
	}
	if len(unlocked) > 0 {
		err = zerr.With(err, "unlocked", strings.Join(unlocked, ", "))
	}
	return err
}

// SortedByName flattens a closure set into a slice sorted by package name.
// Fetch order is derived from this; the sort is for stable output, not
// correctness.
func SortedByName(set map[string]*Package) []*Package {
	pkgs := make([]*Package, 0, len(set))
	for _, pkg := range set {
		pkgs = append(pkgs, pkg)
	}
	slices.SortFunc(pkgs, func(a, b *Package) int {
		return strings.Compare(a.Name, b.Name)
	})
	return pkgs
}
