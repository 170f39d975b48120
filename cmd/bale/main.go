// Package main is the entry point for the bale CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/bale/cmd/bale/commands"
	"go.trai.ch/bale/internal/app"
	_ "go.trai.ch/bale/internal/wiring"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr, initComponents))
}

// componentsProvider initializes the application components. Injected so
// tests can exercise run without the full dependency graph.
type componentsProvider func(ctx context.Context) (*app.Components, error)

func initComponents(ctx context.Context) (*app.Components, error) {
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	return components, err
}

func run(args []string, stderr io.Writer, provider componentsProvider) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)

	if err := cli.Execute(ctx); err != nil {
		// A delegated program's failure is not a bootstrap failure; its exit
		// code passes through unchanged.
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		// zerr prints a full error report with stack trace and metadata
		// when using %+v.
		_, _ = fmt.Fprintf(stderr, "%+v\n", err)
		return 1
	}
	return 0
}
