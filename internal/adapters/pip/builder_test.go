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
	"go.uber.org/mock/gomock"
)

const pipWheelOutput = `Processing /home/dev/app
Building wheels for collected packages: app
Saved ./dist/app-1.0.0-py3-none-any.whl
Successfully built app
`

func TestBuilder_BuildArtifact(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)

	runner.EXPECT().
		Run(gomock.Any(), ".", "pip", "wheel", "--no-deps", "--wheel-dir", "dist", ".").
		Return(ports.CommandResult{Stdout: []byte(pipWheelOutput)}, nil)

	builder := pip.NewBuilder(runner, nopLogger{})
	file, err := builder.BuildArtifact(context.Background(), ".", "dist")
	require.NoError(t, err)
	assert.Equal(t, "app-1.0.0-py3-none-any.whl", file)
}

func TestBuilder_NonZeroExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)

	runner.EXPECT().
		Run(gomock.Any(), ".", "pip", "wheel", "--no-deps", "--wheel-dir", "dist", ".").
		Return(ports.CommandResult{ExitCode: 1, Stderr: []byte("build backend failed")}, nil)

	builder := pip.NewBuilder(runner, nopLogger{})
	_, err := builder.BuildArtifact(context.Background(), ".", "dist")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrArtifactBuildFailed))
}
