// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

// Package sched provides the controller's timer surface: periodic and
// one-shot callbacks with cancellation. Callbacks never run where the
// timer fires — they are posted to the controller's task queue and
// executed on its single event loop, so timer work is serialized with
// player events and hotkeys and no state needs locking.
package sched

import (
	"sync"
	"time"

	"github.com/videowall-foundation/videowall/lib/clock"
)

// Scheduler posts timer callbacks onto a task queue.
type Scheduler struct {
	clock clock.Clock
	tasks chan<- func()
}

// New returns a Scheduler posting to tasks. The channel should be
// buffered; the owner of the queue drains it on its loop.
func New(clk clock.Clock, tasks chan<- func()) *Scheduler {
	return &Scheduler{clock: clk, tasks: tasks}
}

// Handle cancels a scheduled callback. The zero Handle is inert, so a
// struct field holding "no timer scheduled" needs no special casing.
type Handle struct {
	stop func()
}

// Every schedules fn to be posted once per period until cancelled.
// Ticks that arrive while the queue is full are dropped, matching
// ticker semantics — the loop catches up on the next tick rather than
// replaying a backlog of stale refreshes.
func (s *Scheduler) Every(period time.Duration, fn func()) Handle {
	ticker := s.clock.NewTicker(period)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				select {
				case s.tasks <- fn:
				case <-done:
					return
				}
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return Handle{stop: func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}}
}

// After schedules fn to be posted once after delay.
func (s *Scheduler) After(delay time.Duration, fn func()) Handle {
	done := make(chan struct{})
	timer := s.clock.AfterFunc(delay, func() {
		select {
		case s.tasks <- fn:
		case <-done:
		}
	})

	var once sync.Once
	return Handle{stop: func() {
		once.Do(func() {
			timer.Stop()
			close(done)
		})
	}}
}

// Cancel stops a scheduled callback. Safe to call repeatedly and on
// the zero Handle. A callback already posted to the queue still runs;
// cancellation stops future posts, it does not reach into the queue.
func (s *Scheduler) Cancel(handle Handle) {
	if handle.stop != nil {
		handle.stop()
	}
}
