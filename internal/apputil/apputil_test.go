// internal/apputil/apputil_test.go
package apputil

import (
	"bufio"
	"bytes"
	"flag"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"enrich/internal/clibase"
)

func TestThreads(t *testing.T) {
	assert.Equal(t, 4, Threads(4, 8))
	assert.Equal(t, 8, Threads(0, 8))
	assert.Equal(t, 1, Threads(0, 0))
}

func TestFlushOK(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	_, _ = w.WriteString("hello")
	assert.Equal(t, 5, Flush(w, io.Discard, 5))
	assert.Equal(t, "hello", buf.String())
}

func TestHandleParseVersion(t *testing.T) {
	var out, errb bytes.Buffer
	w := bufio.NewWriter(&out)
	fs := flag.NewFlagSet("x", flag.ContinueOnError)

	code, done := HandleParse(nil, true, "enrich-x", fs, w, &errb, func(io.Writer) {})
	assert.True(t, done)
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out.String(), "enrich-x version")
}

func TestHandleParseContinues(t *testing.T) {
	var out bytes.Buffer
	w := bufio.NewWriter(&out)
	fs := flag.NewFlagSet("x", flag.ContinueOnError)

	code, done := HandleParse(nil, false, "enrich-x", fs, w, io.Discard, func(io.Writer) {})
	assert.False(t, done)
	assert.Equal(t, ExitOK, code)
}

func TestHandleParseExamples(t *testing.T) {
	var out bytes.Buffer
	w := bufio.NewWriter(&out)
	fs := flag.NewFlagSet("x", flag.ContinueOnError)

	code, done := HandleParse(clibase.ErrPrintedAndExitOK, false, "enrich-x", fs, w, io.Discard,
		func(wr io.Writer) { _, _ = wr.Write([]byte("quickstart\n")) })
	assert.True(t, done)
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out.String(), "quickstart")
}

func TestHandleParseUsageError(t *testing.T) {
	var out bytes.Buffer
	var errb strings.Builder
	w := bufio.NewWriter(&out)
	fs := flag.NewFlagSet("x", flag.ContinueOnError)

	code, done := HandleParse(assertErr{}, false, "enrich-x", fs, w, &errb, func(io.Writer) {})
	assert.True(t, done)
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, errb.String(), "bad flag")
}

type assertErr struct{}

func (assertErr) Error() string { return "bad flag" }
