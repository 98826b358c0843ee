// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"sort"
	"sync"
	"time"
)

// Fake returns a FakeClock initialized to the given time. Time stands
// still until Advance is called; timers, tickers, and sleeps register
// pending waiters that fire when the clock advances past their
// deadline.
//
// FakeClock is safe for concurrent use by multiple goroutines.
func Fake(initial time.Time) *FakeClock {
	clock := &FakeClock{current: initial}
	clock.pendingChanged = sync.NewCond(&clock.mu)
	return clock
}

// FakeClock is a deterministic Clock for tests. AfterFunc callbacks run
// synchronously during Advance, in deadline order; do not call Advance
// or Sleep from inside a callback, that would deadlock.
type FakeClock struct {
	mu             sync.Mutex
	current        time.Time
	pending        []*fakeTimer
	pendingChanged *sync.Cond
}

// fakeTimer is one pending waiter: a ticker (interval > 0), an
// AfterFunc one-shot (callback != nil), or a Sleep (channel != nil).
type fakeTimer struct {
	deadline time.Time
	interval time.Duration
	callback func()
	channel  chan time.Time
	stopped  bool
	fired    bool
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// AfterFunc schedules f to run when the clock advances past d. If
// d <= 0, f runs synchronously before AfterFunc returns.
func (c *FakeClock) AfterFunc(d time.Duration, f func()) *Timer {
	if d <= 0 {
		f()
		return &Timer{stopFunc: func() bool { return false }}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	waiter := &fakeTimer{
		deadline: c.current.Add(d),
		callback: f,
	}
	c.pending = append(c.pending, waiter)
	c.pendingChanged.Broadcast()

	return &Timer{
		stopFunc: func() bool {
			c.mu.Lock()
			defer c.mu.Unlock()
			if waiter.stopped || waiter.fired {
				return false
			}
			waiter.stopped = true
			return true
		},
	}
}

// NewTicker returns a Ticker firing once per interval during Advance.
// Panics if d <= 0.
func (c *FakeClock) NewTicker(d time.Duration) *Ticker {
	if d <= 0 {
		panic("clock: non-positive interval for NewTicker")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	channel := make(chan time.Time, 1)
	waiter := &fakeTimer{
		deadline: c.current.Add(d),
		interval: d,
		channel:  channel,
	}
	c.pending = append(c.pending, waiter)
	c.pendingChanged.Broadcast()

	return &Ticker{
		C: channel,
		stopFunc: func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			waiter.stopped = true
		},
		resetFunc: func(d time.Duration) {
			c.mu.Lock()
			defer c.mu.Unlock()
			waiter.interval = d
			waiter.deadline = c.current.Add(d)
			waiter.stopped = false
		},
	}
}

// Sleep blocks the calling goroutine until the clock advances past the
// deadline. If d <= 0, returns immediately.
func (c *FakeClock) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}

	c.mu.Lock()
	channel := make(chan time.Time, 1)
	c.pending = append(c.pending, &fakeTimer{
		deadline: c.current.Add(d),
		channel:  channel,
	})
	c.pendingChanged.Broadcast()
	c.mu.Unlock()

	<-channel
}

// Advance moves the clock forward by d and fires every waiter whose
// deadline falls within the new time, in deadline order. Ticker sends
// are non-blocking (drop-if-full, matching time.Ticker); a ticker
// spanning multiple intervals fires once per interval.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.current = c.current.Add(d)
	target := c.current
	c.mu.Unlock()

	for {
		expired := c.collectExpired(target)
		if len(expired) == 0 {
			return
		}

		sort.Slice(expired, func(i, j int) bool {
			return expired[i].deadline.Before(expired[j].deadline)
		})

		for _, waiter := range expired {
			if waiter.callback != nil {
				waiter.callback()
				continue
			}
			select {
			case waiter.channel <- target:
			default:
			}
		}
	}
}

// collectExpired removes expired waiters from the pending list,
// reschedules tickers for their next interval, and returns the waiters
// to fire. One-shot waiters are marked fired and dropped.
func (c *FakeClock) collectExpired(target time.Time) []*fakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expired []*fakeTimer
	var remaining []*fakeTimer

	for _, waiter := range c.pending {
		if waiter.stopped {
			continue
		}
		if !waiter.deadline.After(target) {
			expired = append(expired, waiter)
		} else {
			remaining = append(remaining, waiter)
		}
	}

	for _, waiter := range expired {
		if waiter.interval > 0 {
			waiter.deadline = waiter.deadline.Add(waiter.interval)
			remaining = append(remaining, waiter)
		} else {
			waiter.fired = true
		}
	}

	c.pending = remaining
	return expired
}

// WaitForTimers blocks until at least n waiters are pending. This
// removes the race between a goroutine registering a timer and the
// test advancing the clock:
//
//	go controller.Run(ctx)
//	fake.WaitForTimers(1)              // refresh ticker registered
//	fake.Advance(2 * time.Second)      // deterministically fires it
func (c *FakeClock) WaitForTimers(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.pendingCountLocked() < n {
		c.pendingChanged.Wait()
	}
}

// PendingCount returns the number of active pending waiters.
func (c *FakeClock) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pendingCountLocked()
}

func (c *FakeClock) pendingCountLocked() int {
	count := 0
	for _, waiter := range c.pending {
		if !waiter.stopped {
			count++
		}
	}
	return count
}
