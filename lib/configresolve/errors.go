// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package configresolve

import (
	"errors"
	"fmt"
)

// ErrInvalidShape matches every *ShapeError with errors.Is.
var ErrInvalidShape = errors.New("config is not a plain object")

// ShapeError reports a config file that resolved to something other
// than a plain object: an array, a string, a function, null, and so on.
type ShapeError struct {
	// Path is the config file.
	Path string
	// Kind describes what the config resolved to instead.
	Kind string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("invalid config in %s: expected a plain object, got %s", e.Path, e.Kind)
}

func (e *ShapeError) Is(target error) bool {
	return target == ErrInvalidShape
}
