// Package domain contains the core domain model for the bundler: the locked
// dependency graph, group closures, bundle manifests and the bootstrap payload.
package domain

// Artifact identifies one acceptable on-disk form of a package: a concrete
// filename together with its pinned content hash.
type Artifact struct {
	File string
	Hash string
}

// Package is a single locked package from the dependency graph.
// Immutable once loaded.
type Package struct {
	// Name is the package's identity, unique within a graph.
	Name string

	// Version is the locked version string.
	Version string

	// Requires lists the names of the package's direct dependencies, in
	// lock order.
	Requires []string

	// Artifacts is the set of accepted (filename, hash) pairs for this
	// package's installable artifact.
	Artifacts []Artifact
}

// Spec returns the pinned "name==version" requirement string understood by
// the artifact download operation.
func (p *Package) Spec() string {
	return p.Name + "==" + p.Version
}

// AcceptsArtifact reports whether the given concrete filename and content
// hash match one of the package's accepted artifact identities. A package
// with no recorded artifacts accepts nothing.
func (p *Package) AcceptsArtifact(file, hash string) bool {
	for _, a := range p.Artifacts {
		if a.File == file && a.Hash == hash {
			return true
		}
	}
	return false
}
