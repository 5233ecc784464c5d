// internal/apputil/apputil.go
package apputil

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"

	"enrich/internal/clibase"
	"enrich/internal/version"
	"enrich/internal/writers"
)

// Exit codes shared by all tools.
const (
	ExitOK        = 0
	ExitUsage     = 2
	ExitRuntime   = 3
	ExitCancelled = 130
)

// Flush flushes outw, suppressing broken pipes. It returns the exit
// code the caller should use in place of fallback.
func Flush(outw *bufio.Writer, stderr io.Writer, fallback int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitRuntime
	}
	return fallback
}

// HandleParse deals with the help/examples/version outcomes of
// ParseArgs. done reports whether the app should return code without
// running.
func HandleParse(parseErr error, gotVersion bool, name string,
	fs *flag.FlagSet, outw *bufio.Writer, stderr io.Writer,
	examples func(io.Writer)) (code int, done bool) {

	switch {
	case parseErr == nil:
		if gotVersion {
			_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
			return Flush(outw, stderr, ExitOK), true
		}
		return ExitOK, false

	case errors.Is(parseErr, clibase.ErrPrintedAndExitOK):
		examples(outw)
		return Flush(outw, stderr, ExitOK), true

	case errors.Is(parseErr, flag.ErrHelp):
		fs.SetOutput(outw)
		fs.Usage()
		return Flush(outw, stderr, ExitOK), true

	default:
		_, _ = fmt.Fprintln(stderr, parseErr)
		fs.SetOutput(outw)
		fs.Usage()
		return Flush(outw, stderr, ExitUsage), true
	}
}

// Threads resolves a thread-count flag (0 = all CPUs) against n CPUs.
func Threads(flagVal, numCPU int) int {
	if flagVal > 0 {
		return flagVal
	}
	if numCPU < 1 {
		return 1
	}
	return numCPU
}
