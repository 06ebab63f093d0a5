// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source.
//
// The resolver only needs wall-clock timestamps (temporary bundle file
// names carry the current Unix millisecond), so the interface is a
// single Now method. Production code uses Real(); tests use Fake() to
// pin the timestamp and make generated names predictable:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	resolver, err := configresolve.New(configresolve.WithClock(c))
package clock
