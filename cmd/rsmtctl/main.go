package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps its error, if any, to an exit code.
func run() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCodeFor(err)
	}
	return 0
}

// exitCodeFor maps a root-command error to a process exit code: 2 if the
// failure is a malformed benchmark, 1 for anything else (including cobra's
// own wrong-argument-count error).
func exitCodeFor(err error) int {
	if errors.Is(err, errMalformedBenchmark) {
		return 2
	}
	return 1
}
