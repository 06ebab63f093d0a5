// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bundle

import (
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// Error reports that esbuild could not compile a script config.
type Error struct {
	// Entry is the config file being bundled.
	Entry string
	// Messages are esbuild's error messages, in report order.
	Messages []api.Message
}

func (e *Error) Error() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "bundling %s failed with %d error(s)", e.Entry, len(e.Messages))
	for _, message := range e.Messages {
		builder.WriteString("\n  ")
		if location := message.Location; location != nil {
			fmt.Fprintf(&builder, "%s:%d:%d: ", location.File, location.Line, location.Column)
		}
		builder.WriteString(message.Text)
	}
	return builder.String()
}
