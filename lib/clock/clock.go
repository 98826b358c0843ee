// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Clock is the time source for the controller and its timers.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc waits for duration d, then calls f in its own
	// goroutine (real) or synchronously during Advance (fake).
	// Returns a Timer whose Stop cancels the pending call.
	AfterFunc(d time.Duration, f func()) *Timer

	// NewTicker returns a Ticker delivering ticks on its C channel
	// every d. Panics if d <= 0, matching time.NewTicker.
	NewTicker(d time.Duration) *Ticker

	// Sleep pauses the calling goroutine for at least d.
	Sleep(d time.Duration)
}

// Ticker wraps a periodic timer. Read ticks from C; call Stop when the
// ticker is no longer needed. The C channel has capacity 1, matching
// time.Ticker: if the consumer falls behind, ticks are dropped rather
// than queued.
type Ticker struct {
	C <-chan time.Time

	stopFunc  func()
	resetFunc func(time.Duration)
}

// Stop turns off the ticker. No more ticks are sent on C after Stop
// returns. Stop does not close C.
func (t *Ticker) Stop() { t.stopFunc() }

// Reset adjusts the ticker to a new interval and restarts the tick
// cycle. The next tick arrives after the new duration elapses.
func (t *Ticker) Reset(d time.Duration) { t.resetFunc(d) }

// Timer is a pending one-shot scheduled by AfterFunc. Its channel is
// intentionally not exposed; the callback is the delivery mechanism.
type Timer struct {
	stopFunc func() bool
}

// Stop prevents the timer from firing. Returns true if the call
// stopped the timer, false if it already fired or was stopped.
func (t *Timer) Stop() bool { return t.stopFunc() }
