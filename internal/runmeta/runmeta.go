// internal/runmeta/runmeta.go
package runmeta

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// NewRunID returns the short per-invocation identifier stamped on
// result rows and plot titles.
func NewRunID() string {
	return uuid.NewString()[:8]
}

// Warnf writes a run-tagged warning unless quiet.
func Warnf(dst io.Writer, quiet bool, runID, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN [%s]: "+format+"\n", append([]any{runID}, a...)...)
}
