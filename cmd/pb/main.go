package main

import (
	"fmt"
	"os"
	"runtime"
)

// Version information - set by goreleaser
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Unexpected internal faults map to the generic failure exit code
	// instead of a bare panic trace.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "pb: internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	Execute()
}

// versionString returns the version string.
func versionString() string {
	return fmt.Sprintf("pb %s (%s, %s, %s)", version, commit[:min(7, len(commit))], date, runtime.Version())
}
