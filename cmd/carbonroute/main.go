// Command carbonroute estimates the CO₂ emission of a trip.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/carbonroute/internal/calculator"
	"github.com/rshade/carbonroute/internal/cli"
	"github.com/rshade/carbonroute/internal/emission"
	"github.com/rshade/carbonroute/internal/routes"
	"github.com/rshade/carbonroute/pkg/version"
)

// Exit codes.
const (
	exitError = 1
	exitInput = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:])
	stop()

	if err != nil {
		os.Exit(report(os.Stderr, err))
	}
}

func run(ctx context.Context, args []string) error {
	root := cli.NewRootCmd(version.String())
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// report prints err and returns the process exit code.
func report(w io.Writer, err error) int {
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
	return exitCode(err)
}

// exitCode maps input problems the user can fix to exitInput.
func exitCode(err error) int {
	switch {
	case errors.Is(err, routes.ErrRouteNotFound),
		errors.Is(err, calculator.ErrInvalidDistance),
		errors.Is(err, emission.ErrUnknownMode):
		return exitInput
	default:
		return exitError
	}
}
