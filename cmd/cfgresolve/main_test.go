// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"strings"
	"testing"

	"github.com/bureau-foundation/cfgresolve/cmd/cfgresolve/cli"
	"github.com/bureau-foundation/cfgresolve/cmd/cfgresolve/commands"
)

// TestCommandTreeDocumented walks the production command tree and
// checks that every runnable command has help text and that every
// command with flags names its positional argument in Usage.
func TestCommandTreeDocumented(t *testing.T) {
	walkCommands(commands.Root(), nil, func(command *cli.Command, path []string) {
		name := strings.Join(path, " ")
		if command.Run != nil && command.Summary == "" && command.Description == "" {
			t.Errorf("%s: runnable command has no help text", name)
		}
		if command.Flags != nil && !strings.Contains(command.Usage, "NAME") {
			t.Errorf("%s: Usage %q does not show the NAME argument", name, command.Usage)
		}
	})
}

func walkCommands(command *cli.Command, path []string, visit func(*cli.Command, []string)) {
	current := make([]string, len(path)+1)
	copy(current, path)
	current[len(path)] = command.Name
	visit(command, current)
	for _, sub := range command.Subcommands {
		walkCommands(sub, current, visit)
	}
}
