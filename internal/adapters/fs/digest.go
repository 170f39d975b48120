package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Digest accumulates an XXHash content digest over a byte stream.
type Digest struct {
	h *xxhash.Digest
}

// NewDigest creates an empty Digest.
func NewDigest() *Digest {
	return &Digest{h: xxhash.New()}
}

// Write feeds bytes into the digest.
func (d *Digest) Write(p []byte) (int, error) {
	return d.h.Write(p)
}

// Sum returns the digest in fixed-width hex form.
func (d *Digest) Sum() string {
	return fmt.Sprintf("%016x", d.h.Sum64())
}

// FileDigest computes the content digest of a single file.
func FileDigest(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // best effort close in defer

	d := NewDigest()
	if _, err := io.Copy(d, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	return d.Sum(), nil
}
