// Package app implements the application layer for bale.
package app

import (
	"context"

	"go.trai.ch/bale/internal/bootstrap"
	"go.trai.ch/bale/internal/core/ports"
	"go.trai.ch/bale/internal/engine/bundler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	bundler      *bundler.Bundler
	bootstrap    *bootstrap.Bootstrap
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, b *bundler.Bundler, boot *bootstrap.Bootstrap) *App {
	return &App{
		configLoader: loader,
		bundler:      b,
		bootstrap:    boot,
	}
}

// Bundle loads the project from the current directory and produces its
// executables.
func (a *App) Bundle(ctx context.Context, opts bundler.Options) error {
	project, index, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if err := a.bundler.Run(ctx, project, index, opts); err != nil {
		return zerr.Wrap(err, "bundling failed")
	}
	return nil
}

// Boot runs the produced executable at execPath and returns its exit code.
func (a *App) Boot(ctx context.Context, execPath string, args []string) (int, error) {
	return a.bootstrap.Run(ctx, execPath, args)
}

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}
