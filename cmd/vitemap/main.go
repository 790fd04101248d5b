// Package main is the entry point for the vitemap asset resolver.
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
	"github.com/joho/godotenv"
	"go.trai.ch/vitemap/cmd/vitemap/commands"
	"go.trai.ch/vitemap/internal/adapters/logger"
	"go.trai.ch/vitemap/internal/app"
	"go.trai.ch/vitemap/internal/core/domain"
	_ "go.trai.ch/vitemap/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, error)

func main() {
	// Configuration may reference variables kept in a local .env file.
	_ = godotenv.Load()

	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)
	if l, ok := components.Logger.(*logger.Logger); ok {
		cli.OnVerbose(func(verbose bool) { l.SetVerbose(stderr, verbose) })
	}

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrMissingOutputs) {
			// Already reported by the check command.
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
