package domain

import (
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// ArchivePrefix is the directory inside the archive holding every dependency
// artifact plus the project's own built artifact, flat.
const ArchivePrefix = "packages"

// ArchiveEntry maps a path inside the archive to the build-machine file
// backing it.
type ArchiveEntry struct {
	Path   string
	Source string
}

// Manifest describes the archive for one entry point. It is constructed
// fresh per entry point and discarded once the executable is written.
type Manifest struct {
	// Entry is the entry-point name; the executable is named after it.
	Entry string

	// Constraint is the interpreter-version constraint embedded in the payload.
	Constraint string

	// Identity is the build identity namespacing target-machine state.
	Identity string

	// Entries is the ordered list of archive entries.
	Entries []ArchiveEntry

	// Payload is the rendered bootstrap payload text, stored at PayloadName.
	Payload string
}

// NewIdentity derives a build identity for an entry point. The random
// component guarantees two builds of the same entry point never collide on
// the target machine's state directories.
func NewIdentity(entry string) string {
	return entry + "-" + uuid.NewString()
}

// NewManifest lays out the archive for one entry point: every given artifact
// file flat under the packages prefix, plus the rendered payload at the
// well-known top-level path.
func NewManifest(entry, constraint, identity string, artifacts []string) Manifest {
	entries := make([]ArchiveEntry, 0, len(artifacts))
	for _, src := range artifacts {
		entries = append(entries, ArchiveEntry{
			Path:   path.Join(ArchivePrefix, filepath.Base(src)),
			Source: src,
		})
	}
	return Manifest{
		Entry:      entry,
		Constraint: constraint,
		Identity:   identity,
		Entries:    entries,
		Payload:    RenderPayload(constraint, entry, identity),
	}
}
