// Package logging is a thin wrapper over stderr diagnostics for internal
// defensive checks and the allocation-failure path (spec.md §7). It is
// not the specified stdout print/echo protocol, which the driver writes
// directly; this is only for conditions a correct program never
// triggers, in the plain fmt.Fprintf(os.Stderr, ...) register
// db47h-ngaro's cmd/retro uses ahead of a fatal exit.
package logging

import (
	"fmt"
	"os"
)

// Warnf writes a diagnostic line to stderr. Used for internal defensive
// checks that log rather than panic, so a single malformed statement
// doesn't bring down the whole interpreter session.
func Warnf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// Fatalf writes a diagnostic line to stderr and exits the process with
// the given code. Used for the allocation-failure path (spec.md §7,
// exit code 2) and other conditions the driver treats as unrecoverable.
func Fatalf(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(code)
}
