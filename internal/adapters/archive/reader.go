package archive

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/bale/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Reader reads the archive portion of a produced executable. archive/zip
// locates the central directory at the end of the file, so the header line
// in front of the archive needs no special handling.
type Reader struct {
	f  *os.File
	zr *zip.Reader
}

// OpenExecutable opens a produced executable for reading.
func OpenExecutable(path string) (*Reader, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the kernel's shebang handoff
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open executable"), "path", path)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, zerr.With(zerr.Wrap(err, "failed to stat executable"), "path", path)
	}
	zr, err := zip.NewReader(f, info.Size())
	if err != nil {
		_ = f.Close()
		return nil, zerr.With(zerr.Wrap(err, "executable does not carry a readable archive"), "path", path)
	}
	return &Reader{f: f, zr: zr}, nil
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	return r.f.Close()
}

// Payload returns the parsed bootstrap payload stored at the well-known
// top-level path.
func (r *Reader) Payload() (domain.Payload, error) {
	rc, err := r.zr.Open(domain.PayloadName)
	if err != nil {
		return domain.Payload{}, zerr.With(domain.ErrMalformedPayload, "missing", domain.PayloadName)
	}
	defer rc.Close() //nolint:errcheck // read-only entry

	data, err := io.ReadAll(rc)
	if err != nil {
		return domain.Payload{}, zerr.Wrap(err, domain.ErrMalformedPayload.Error())
	}
	var p domain.Payload
	if err := yaml.Unmarshal(data, &p); err != nil {
		return domain.Payload{}, zerr.Wrap(err, domain.ErrMalformedPayload.Error())
	}
	if !p.Complete() {
		return domain.Payload{}, zerr.With(domain.ErrMalformedPayload, "payload", string(data))
	}
	return p, nil
}

// ExtractTo extracts every archive entry under dir, rejecting entries that
// would escape it.
func (r *Reader) ExtractTo(dir string) error {
	for _, f := range r.zr.File {
		dest := filepath.Join(dir, filepath.FromSlash(f.Name))
		if rel, err := filepath.Rel(dir, dest); err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return zerr.With(zerr.New("archive entry escapes extraction directory"), "entry", f.Name)
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(dest, 0o755); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", dest)
			}
			continue
		}
		if err := extractFile(f, dest); err != nil {
			return err
		}
	}
	return nil
}

func extractFile(f *zip.File, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", filepath.Dir(dest))
	}
	rc, err := f.Open()
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open archive entry"), "entry", f.Name)
	}
	defer rc.Close() //nolint:errcheck // read-only entry

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644) //nolint:gosec // dest is traversal-checked
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create extracted file"), "path", dest)
	}
	if _, err := io.Copy(out, rc); err != nil { //nolint:gosec // bundled by us at build time
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to extract entry"), "entry", f.Name)
	}
	return out.Close()
}
