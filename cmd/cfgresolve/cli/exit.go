// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ExitError makes the binary exit with Code without printing anything
// further. Commands return it after writing their own explanation, for
// outcomes like "no config found" that are answers rather than
// failures.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns Code. main checks for this method to tell handled
// exits from errors it should print.
func (e *ExitError) ExitCode() int {
	return e.Code
}
