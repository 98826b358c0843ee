// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock abstracts time for the overlay controller so tests can
// drive timers deterministically. Production code injects Real();
// tests inject Fake() and call Advance to fire pending timers in
// deadline order.
//
// Every controller-side function that would call time.Now,
// time.AfterFunc, time.NewTicker, or time.Sleep takes a Clock (or is a
// method on a struct holding one) instead of calling the time package
// directly. The HUD refresh ticker, the message rotation ticker, and
// the clock telemetry module all read time through this interface.
package clock
