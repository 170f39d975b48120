// Package archive assembles bundle archives, packages them into directly
// executable files, and reads them back on the target machine.
package archive

import (
	"archive/zip"
	"errors"
	"io"
	iofs "io/fs"
	"os"

	"go.trai.ch/bale/internal/core/domain"
	"go.trai.ch/bale/internal/core/ports"
	"go.trai.ch/zerr"
)

// Writer assembles a manifest's entries into a zip archive.
type Writer struct {
	logger ports.Logger
}

// NewWriter creates a new Writer.
func NewWriter(logger ports.Logger) *Writer {
	return &Writer{logger: logger}
}

// WriteArchive writes the manifest into a zip file at path, discarding any
// pre-existing file there first. Every entry is stored flat under its
// manifest path, and the rendered payload goes in at the well-known
// top-level name.
func (w *Writer) WriteArchive(m domain.Manifest, path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove stale archive"), "path", path)
	}

	f, err := os.Create(path) //nolint:gosec // path is derived from the entry name
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create archive"), "path", path)
	}
	defer f.Close() //nolint:errcheck // explicit close below, defer is a fallback

	zw := zip.NewWriter(f)
	for _, entry := range m.Entries {
		w.logger.Info("adding " + entry.Path)
		if err := addFile(zw, entry); err != nil {
			return err
		}
	}

	payload, err := zw.Create(domain.PayloadName)
	if err != nil {
		return zerr.Wrap(err, "failed to create payload entry")
	}
	if _, err := io.WriteString(payload, m.Payload); err != nil {
		return zerr.Wrap(err, "failed to write payload entry")
	}

	if err := zw.Close(); err != nil {
		return zerr.Wrap(err, "failed to finalize archive")
	}
	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close archive"), "path", path)
	}
	return nil
}

func addFile(zw *zip.Writer, entry domain.ArchiveEntry) error {
	src, err := os.Open(entry.Source) //nolint:gosec // sources come from the verified packages dir
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open archive source"), "path", entry.Source)
	}
	defer src.Close() //nolint:errcheck // read-only file

	dst, err := zw.Create(entry.Path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create archive entry"), "path", entry.Path)
	}
	if _, err := io.Copy(dst, src); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write archive entry"), "path", entry.Path)
	}
	return nil
}
