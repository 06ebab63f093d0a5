// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Clock abstracts reading the current time. Every production function
// that would call time.Now should accept a Clock (or be a method on a
// struct holding one) instead.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}
