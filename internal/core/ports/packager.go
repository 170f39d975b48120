package ports

import "go.trai.ch/bale/internal/core/domain"

// Packager turns a bundle manifest into a directly executable file.
//
//go:generate go run go.uber.org/mock/mockgen -source=packager.go -destination=mocks/mock_packager.go -package=mocks
type Packager interface {
	// Package writes the manifest's archive into outDir, produces the final
	// executable named after the entry point, and returns its path together
	// with the content digest of the archive stream. The intermediate
	// archive is removed unless keepArchive is set.
	Package(m domain.Manifest, outDir string, keepArchive bool) (path string, digest string, err error)
}
