package main

import (
	"context"
	"fmt"
	"io"
	"os"
)

// lifecycle is the subset of *fx.App driven by run.
type lifecycle interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Done() <-chan os.Signal
}

// run starts app, blocks until ctx is cancelled or the app requests shutdown,
// and returns the process exit code.
func run(ctx context.Context, app lifecycle, stderr io.Writer) int {
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(stderr, "failed to start gopherauth: %v\n", err)
		return 1
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		fmt.Fprintf(stderr, "failed to stop gopherauth: %v\n", err)
		return 1
	}
	return 0
}
