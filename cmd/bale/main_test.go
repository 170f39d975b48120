package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/bale/internal/app"
)

func TestRun_ProviderError(t *testing.T) {
	var stderr bytes.Buffer
	provider := func(_ context.Context) (*app.Components, error) {
		return nil, errors.New("node graph incomplete")
	}

	exitCode := run([]string{"version"}, &stderr, provider)
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "node graph incomplete")
}
