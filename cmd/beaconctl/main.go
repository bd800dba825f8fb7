// SPDX-License-Identifier: MIT

// Package main provides beaconctl, a command-line front end that loads place
// and beacon documents, assembles the positioning graph and prints it.
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("beaconctl failed", "error", err)
		os.Exit(1)
	}
}
