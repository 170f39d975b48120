package archive_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bale/internal/adapters/archive"
	"go.trai.ch/bale/internal/core/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

// buildManifest lays out a small fake artifact set on disk and returns the
// manifest describing it.
func buildManifest(t *testing.T, entry string) domain.Manifest {
	t.Helper()
	dir := t.TempDir()
	a := filepath.Join(dir, "requests-2.31.0-py3-none-any.whl")
	b := filepath.Join(dir, "app-1.0.0-py3-none-any.whl")
	require.NoError(t, os.WriteFile(a, []byte("wheel-a"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("wheel-b"), 0o644))
	return domain.NewManifest(entry, "^3.9", entry+"-test-identity", []string{a, b})
}

func newPackager() *archive.Packager {
	return archive.NewPackager(archive.NewWriter(nopLogger{}), nopLogger{})
}

func TestPackager_ExecutableStartsWithHeader(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "dist")
	m := buildManifest(t, "serve")

	exePath, digest, err := newPackager().Package(m, outDir, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "serve"), exePath)
	assert.NotEmpty(t, digest)

	data, err := os.ReadFile(exePath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), archive.HeaderLine))
}

func TestPackager_ExecutableMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no unix permission bits on windows")
	}
	outDir := filepath.Join(t.TempDir(), "dist")
	m := buildManifest(t, "serve")

	exePath, _, err := newPackager().Package(m, outDir, false)
	require.NoError(t, err)

	info, err := os.Stat(exePath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestPackager_RemovesIntermediateArchive(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "dist")
	m := buildManifest(t, "serve")

	_, _, err := newPackager().Package(m, outDir, false)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(outDir, "serve.zip"))
	assert.True(t, os.IsNotExist(err))
}

func TestPackager_KeepArchive(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "dist")
	m := buildManifest(t, "serve")

	_, _, err := newPackager().Package(m, outDir, true)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(outDir, "serve.zip"))
	assert.NoError(t, err)
}

func TestPackager_ExecutableReadsBackAsArchive(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "dist")
	m := buildManifest(t, "serve")

	exePath, _, err := newPackager().Package(m, outDir, false)
	require.NoError(t, err)

	reader, err := archive.OpenExecutable(exePath)
	require.NoError(t, err)
	defer reader.Close()

	payload, err := reader.Payload()
	require.NoError(t, err)
	assert.Equal(t, "serve", payload.Entry)
	assert.Equal(t, "^3.9", payload.Constraint)
	assert.Equal(t, "serve-test-identity", payload.Identity)
	assert.Equal(t, domain.Interpreter, payload.Interpreter)
}

func TestReader_ExtractTo(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "dist")
	m := buildManifest(t, "serve")

	exePath, _, err := newPackager().Package(m, outDir, false)
	require.NoError(t, err)

	reader, err := archive.OpenExecutable(exePath)
	require.NoError(t, err)
	defer reader.Close()

	target := filepath.Join(t.TempDir(), "extracted")
	require.NoError(t, reader.ExtractTo(target))

	content, err := os.ReadFile(filepath.Join(target, "packages", "requests-2.31.0-py3-none-any.whl"))
	require.NoError(t, err)
	assert.Equal(t, "wheel-a", string(content))

	_, err = os.Stat(filepath.Join(target, domain.PayloadName))
	assert.NoError(t, err)
}

func TestOpenExecutable_NotAnArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\necho hi\n"), 0o755))

	_, err := archive.OpenExecutable(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "archive")
}
