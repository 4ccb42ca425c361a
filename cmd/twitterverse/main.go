// Package main provides the twitterverse CLI.
//
// Usage:
//
//	twitterverse [flags] <command> [args]
//
// Commands:
//
//	query  - answer query files against a data file
//	user   - print one user's profile
//	serve  - serve queries over HTTP
//
// Flags common to every command: --config (YAML file), --data (data file,
// overrides the config) and --log-level (overrides the config).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
