package archive

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/bale/internal/adapters/fs"
	"go.trai.ch/bale/internal/core/domain"
	"go.trai.ch/bale/internal/core/ports"
	"go.trai.ch/zerr"
)

// HeaderLine is the fixed one-line interpreter-invocation header prepended
// to the archive. env -S splits it into "bale boot", which then receives the
// executable's own path and the original arguments from the kernel. The zip
// central directory lives at the end of the stream, so the prefix does not
// disturb archive offsets.
const HeaderLine = "#!/usr/bin/env -S bale boot\n"

// executableMode is owner read/write/execute, group and other read/execute.
const executableMode = 0o755

var _ ports.Packager = (*Packager)(nil)

// Packager implements ports.Packager: archive assembly followed by header
// concatenation.
type Packager struct {
	writer *Writer
	logger ports.Logger
}

// NewPackager creates a new Packager.
func NewPackager(writer *Writer, logger ports.Logger) *Packager {
	return &Packager{writer: writer, logger: logger}
}

// Package writes the manifest's archive into outDir, concatenates the header
// line and the archive stream into an executable named after the entry
// point, and marks it executable. Returns the executable path and the
// content digest of the archive stream. The intermediate archive is removed
// unless keepArchive is set; it is never needed again after this point.
func (p *Packager) Package(m domain.Manifest, outDir string, keepArchive bool) (string, string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", "", zerr.With(zerr.Wrap(err, "failed to create output directory"), "path", outDir)
	}

	archivePath := filepath.Join(outDir, m.Entry+".zip")
	if err := p.writer.WriteArchive(m, archivePath); err != nil {
		return "", "", err
	}

	exePath := filepath.Join(outDir, m.Entry)
	digest, err := concatenate(archivePath, exePath)
	if err != nil {
		return "", "", err
	}
	if err := os.Chmod(exePath, executableMode); err != nil {
		return "", "", zerr.With(zerr.Wrap(err, "failed to mark executable"), "path", exePath)
	}

	if !keepArchive {
		if err := os.Remove(archivePath); err != nil {
			return "", "", zerr.With(zerr.Wrap(err, "failed to remove intermediate archive"), "path", archivePath)
		}
	}
	return exePath, digest, nil
}

func concatenate(archivePath, exePath string) (string, error) {
	src, err := os.Open(archivePath) //nolint:gosec // our own freshly written archive
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open archive"), "path", archivePath)
	}
	defer src.Close() //nolint:errcheck // read-only file

	if err := os.Remove(exePath); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return "", zerr.With(zerr.Wrap(err, "failed to remove stale executable"), "path", exePath)
	}
	dst, err := os.OpenFile(exePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, executableMode) //nolint:gosec // path derived from entry name
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create executable"), "path", exePath)
	}

	digest := fs.NewDigest()
	_, err = io.WriteString(dst, HeaderLine)
	if err == nil {
		_, err = io.Copy(dst, io.TeeReader(src, digest))
	}
	if err != nil {
		_ = dst.Close()
		return "", zerr.With(zerr.Wrap(err, "failed to write executable"), "path", exePath)
	}
	if err := dst.Close(); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to close executable"), "path", exePath)
	}
	return digest.Sum(), nil
}
