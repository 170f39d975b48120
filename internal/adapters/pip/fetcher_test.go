package pip_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bale/internal/adapters/pip"
	"go.trai.ch/bale/internal/core/domain"
	"go.trai.ch/bale/internal/core/ports"
	"go.trai.ch/bale/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

const pipDownloadOutput = `Collecting requests==2.31.0
  Downloading requests-2.31.0-py3-none-any.whl (62 kB)
Saved ./requests-2.31.0-py3-none-any.whl
Successfully downloaded requests
`

func TestFetcher_ParsesSavedLine(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)

	runner.EXPECT().
		Run(gomock.Any(), "dist/packages", "pip", "download", "requests==2.31.0", "--no-deps").
		Return(ports.CommandResult{Stdout: []byte(pipDownloadOutput)}, nil)

	fetcher := pip.NewFetcher(runner, nopLogger{})
	pkg := &domain.Package{Name: "requests", Version: "2.31.0"}

	file, err := fetcher.Fetch(context.Background(), pkg, "dist/packages")
	require.NoError(t, err)
	assert.Equal(t, "requests-2.31.0-py3-none-any.whl", file)
}

func TestFetcher_NonZeroExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)

	runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), "pip", "download", "ghost==0.0.1", "--no-deps").
		Return(ports.CommandResult{ExitCode: 1, Stderr: []byte("No matching distribution")}, nil)

	fetcher := pip.NewFetcher(runner, nopLogger{})
	pkg := &domain.Package{Name: "ghost", Version: "0.0.1"}

	_, err := fetcher.Fetch(context.Background(), pkg, "dist/packages")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFetchFailed))

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "ghost==0.0.1", zErr.Metadata()["package"])
}

func TestFetcher_UnparseableOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)

	runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), "pip", "download", "requests==2.31.0", "--no-deps").
		Return(ports.CommandResult{Stdout: []byte("nothing useful here\n")}, nil)

	fetcher := pip.NewFetcher(runner, nopLogger{})
	pkg := &domain.Package{Name: "requests", Version: "2.31.0"}

	_, err := fetcher.Fetch(context.Background(), pkg, "dist/packages")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not parse")
}

func TestFetcher_RunnerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)

	bootErr := zerr.New("command did not start")
	runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), "pip", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(ports.CommandResult{}, bootErr)

	fetcher := pip.NewFetcher(runner, nopLogger{})
	pkg := &domain.Package{Name: "requests", Version: "2.31.0"}

	_, err := fetcher.Fetch(context.Background(), pkg, "dist/packages")
	assert.ErrorIs(t, err, bootErr)
}
