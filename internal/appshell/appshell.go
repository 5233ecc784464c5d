// internal/appshell/appshell.go
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"enrich/internal/apputil"
)

// Main runs one tool's RunContext under SIGINT/SIGTERM cancellation and
// exits the process with its code. An empty command line shows help.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	code := run(ctx, argv, os.Stdout, os.Stderr)
	// A run that raced the signal to a clean finish still reports
	// cancellation.
	if ctx.Err() != nil && code == apputil.ExitOK {
		code = apputil.ExitCancelled
	}

	stop()
	os.Exit(code)
}
