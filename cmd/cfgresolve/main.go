// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Command cfgresolve resolves configuration modules from the command
// line, for checking what a program embedding cfgresolve will see.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/bureau-foundation/cfgresolve/cmd/cfgresolve/commands"
)

func main() {
	if err := run(); err != nil {
		// Commands that already explained themselves return an
		// ExitError; don't add an "error:" line.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return commands.Root().Execute(ctx, os.Args[1:])
}
