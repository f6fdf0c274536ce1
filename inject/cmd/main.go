// Package main provides the inject CLI that rewrites the
// INJECT regions of a document with the contents of the
// files their directives reference.
package main

import (
	"log/slog"
	"os"
)

// version is set at link time.
var version = "dev"

func main() {
	cmd := newRootCmd()

	if err := cmd.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
