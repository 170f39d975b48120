package commands_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bale/cmd/bale/commands"
	"go.trai.ch/bale/internal/adapters/archive"
	"go.trai.ch/bale/internal/adapters/telemetry"
	"go.trai.ch/bale/internal/app"
	"go.trai.ch/bale/internal/bootstrap"
	"go.trai.ch/bale/internal/core/domain"
	"go.trai.ch/bale/internal/core/ports"
	"go.trai.ch/bale/internal/core/ports/mocks"
	"go.trai.ch/bale/internal/engine/bundler"
	"go.uber.org/mock/gomock"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

type testHarness struct {
	loader    *mocks.MockConfigLoader
	fetcher   *mocks.MockArtifactFetcher
	hasher    *mocks.MockArtifactHasher
	builder   *mocks.MockProjectBuilder
	packager  *mocks.MockPackager
	workspace *mocks.MockWorkspace
	store     *mocks.MockBundleInfoStore
	runner    *mocks.MockCommandRunner
	env       *mocks.MockEnvProvisioner
	tmpRoot   string
	cli       *commands.CLI
}

func newHarness(t *testing.T) *testHarness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &testHarness{
		loader:    mocks.NewMockConfigLoader(ctrl),
		fetcher:   mocks.NewMockArtifactFetcher(ctrl),
		hasher:    mocks.NewMockArtifactHasher(ctrl),
		builder:   mocks.NewMockProjectBuilder(ctrl),
		packager:  mocks.NewMockPackager(ctrl),
		workspace: mocks.NewMockWorkspace(ctrl),
		store:     mocks.NewMockBundleInfoStore(ctrl),
		runner:    mocks.NewMockCommandRunner(ctrl),
		env:       mocks.NewMockEnvProvisioner(ctrl),
		tmpRoot:   t.TempDir(),
	}
	b := bundler.New(h.fetcher, h.hasher, h.builder, h.packager, h.workspace, h.store, telemetry.NewNoOp(), nopLogger{})
	boot := bootstrap.NewWithTempRoot(h.runner, h.env, nopLogger{}, h.tmpRoot)
	h.cli = commands.New(app.New(h.loader, b, boot))
	return h
}

func testProject(t *testing.T) (*domain.Project, *domain.Index) {
	t.Helper()
	root := &domain.Package{Name: "app", Version: "1.0.0"}
	packages := []*domain.Package{
		{Name: "requests", Version: "2.31.0",
			Artifacts: []domain.Artifact{{File: "requests.whl", Hash: "sha256:r"}}},
	}
	ix, err := domain.NewIndex(root, packages)
	require.NoError(t, err)

	return &domain.Project{
		Root:        root,
		Constraint:  "^3.9",
		EntryPoints: map[string]string{"serve": "app:main"},
		Groups:      map[string][]string{domain.BundleGroup: {"requests"}},
	}, ix
}

func TestBundle_Success(t *testing.T) {
	h := newHarness(t)
	project, ix := testProject(t)

	h.loader.EXPECT().Load(".").Return(project, ix, nil)
	h.workspace.EXPECT().DistDir().Return("dist").AnyTimes()
	h.workspace.EXPECT().PackagesDir().Return("dist/packages").AnyTimes()
	h.workspace.EXPECT().CleanPackages().Return(nil)
	h.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), "dist/packages").Return("requests.whl", nil)
	h.hasher.EXPECT().Hash(gomock.Any(), gomock.Any()).Return("sha256:r", nil)
	h.builder.EXPECT().BuildArtifact(gomock.Any(), ".", "dist").Return("app-1.0.0.whl", nil)
	h.workspace.EXPECT().Artifacts().Return([]string{"dist/packages/requests.whl"}, nil)
	h.packager.EXPECT().Package(gomock.Any(), "dist", false).Return("dist/serve", "digest", nil)
	h.store.EXPECT().Put(gomock.Any()).Return(nil)

	h.cli.SetArgs([]string{"bundle"})
	require.NoError(t, h.cli.Execute(context.Background()))
}

func TestBundle_KeepArchiveFlag(t *testing.T) {
	h := newHarness(t)
	project, ix := testProject(t)

	h.loader.EXPECT().Load(".").Return(project, ix, nil)
	h.workspace.EXPECT().DistDir().Return("dist").AnyTimes()
	h.workspace.EXPECT().PackagesDir().Return("dist/packages").AnyTimes()
	h.workspace.EXPECT().CleanPackages().Return(nil)
	h.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return("requests.whl", nil)
	h.hasher.EXPECT().Hash(gomock.Any(), gomock.Any()).Return("sha256:r", nil)
	h.builder.EXPECT().BuildArtifact(gomock.Any(), ".", "dist").Return("app-1.0.0.whl", nil)
	h.workspace.EXPECT().Artifacts().Return(nil, nil)
	// The flag reaches the packager as keepArchive=true.
	h.packager.EXPECT().Package(gomock.Any(), "dist", true).Return("dist/serve", "digest", nil)
	h.store.EXPECT().Put(gomock.Any()).Return(nil)

	h.cli.SetArgs([]string{"bundle", "--keep-archive"})
	require.NoError(t, h.cli.Execute(context.Background()))
}

func TestBundle_LoaderError(t *testing.T) {
	h := newHarness(t)

	h.loader.EXPECT().Load(".").Return(nil, nil, errors.New("no bundle.yaml"))

	h.cli.SetArgs([]string{"bundle"})
	err := h.cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestBoot_MirrorsExitCode(t *testing.T) {
	h := newHarness(t)

	// Produce a real executable for the boot path to open.
	srcDir := t.TempDir()
	wheel := filepath.Join(srcDir, "requests.whl")
	require.NoError(t, os.WriteFile(wheel, []byte("w"), 0o644))
	m := domain.NewManifest("serve", "^3.9", "serve-id", []string{wheel})
	packager := archive.NewPackager(archive.NewWriter(nopLogger{}), nopLogger{})
	exePath, _, err := packager.Package(m, filepath.Join(t.TempDir(), "dist"), false)
	require.NoError(t, err)

	envDir := filepath.Join(h.tmpRoot, "serve-id")
	h.runner.EXPECT().
		Run(gomock.Any(), "", domain.Interpreter, "--version").
		Return(ports.CommandResult{Stdout: []byte("Python 3.11.2\n")}, nil)
	h.env.EXPECT().
		Provision(gomock.Any(), envDir, domain.Interpreter, gomock.Any()).
		DoAndReturn(func(_ context.Context, envDir, _ string, _ []string) error {
			return os.MkdirAll(filepath.Join(envDir, "bin"), 0o755)
		})
	h.runner.EXPECT().
		RunPassthrough(gomock.Any(), "", filepath.Join(envDir, "bin", "serve"), "--verbose").
		Return(9, nil)

	h.cli.SetArgs([]string{"boot", exePath, "--verbose"})
	err = h.cli.Execute(context.Background())
	require.Error(t, err)

	var exitErr interface{ ExitCode() int }
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 9, exitErr.ExitCode())
}

func TestBoot_MissingExecutable(t *testing.T) {
	h := newHarness(t)

	h.cli.SetArgs([]string{"boot", "/definitely/not/there"})
	err := h.cli.Execute(context.Background())
	require.Error(t, err)
}

func TestRoot_Help(t *testing.T) {
	h := newHarness(t)

	h.cli.SetArgs([]string{"--help"})
	if err := h.cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error for help, got: %v", err)
	}
}

func TestVersion(t *testing.T) {
	h := newHarness(t)

	h.cli.SetArgs([]string{"version"})
	if err := h.cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error for version, got: %v", err)
	}
}
