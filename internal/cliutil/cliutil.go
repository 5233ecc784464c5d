// internal/cliutil/cliutil.go
package cliutil

import (
	"flag"
	"fmt"
	"strings"
)

// boolFlags collects the names of flags that take no value.
func boolFlags(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) {
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			m[f.Name] = true
		}
	})
	return m
}

// SplitFlagsAndPositionals separates flag-like args from positionals so
// the table path may appear anywhere on the command line. "--" ends
// flag parsing; a lone "-" stays positional. Use before fs.Parse.
func SplitFlagsAndPositionals(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	isBool := boolFlags(fs)
	i := 0
	for i < len(argv) {
		arg := argv[i]
		i++
		switch {
		case arg == "--":
			posArgs = append(posArgs, argv[i:]...)
			return
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			posArgs = append(posArgs, arg)
		default:
			flagArgs = append(flagArgs, arg)
			if strings.Contains(arg, "=") {
				continue
			}
			name := strings.TrimLeft(arg, "-")
			if !isBool[name] && i < len(argv) {
				flagArgs = append(flagArgs, argv[i])
				i++
			}
		}
	}
	return
}

// SingleTable reduces positionals to the zero-or-one table path the
// tools accept.
func SingleTable(posArgs []string) (string, error) {
	switch len(posArgs) {
	case 0:
		return "", nil
	case 1:
		return posArgs[0], nil
	default:
		return "", fmt.Errorf("expected at most one positional table, got %d", len(posArgs))
	}
}
