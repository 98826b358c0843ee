// Copyright 2026 The VideoWall Authors
// SPDX-License-Identifier: Apache-2.0

package sched

import (
	"testing"
	"time"

	"github.com/videowall-foundation/videowall/lib/clock"
	"github.com/videowall-foundation/videowall/lib/testutil"
)

// drain pulls one posted callback off the queue and runs it, the way
// the controller loop would.
func drain(t *testing.T, tasks chan func()) {
	t.Helper()
	task := testutil.RequireReceive(t, tasks, 5*time.Second, "waiting for scheduled callback")
	task()
}

func requireEmpty(t *testing.T, tasks chan func()) {
	t.Helper()
	select {
	case <-tasks:
		t.Fatal("unexpected callback on the task queue")
	default:
	}
}

func TestEveryPostsOncePerPeriod(t *testing.T) {
	clk := clock.Fake(time.Unix(1000, 0))
	tasks := make(chan func(), 8)
	scheduler := New(clk, tasks)

	fired := 0
	scheduler.Every(time.Second, func() { fired++ })

	for range 3 {
		clk.Advance(time.Second)
		drain(t, tasks)
	}
	if fired != 3 {
		t.Fatalf("fired = %d, want 3", fired)
	}
}

func TestAfterPostsExactlyOnce(t *testing.T) {
	clk := clock.Fake(time.Unix(1000, 0))
	tasks := make(chan func(), 8)
	scheduler := New(clk, tasks)

	fired := 0
	scheduler.After(5*time.Second, func() { fired++ })

	clk.Advance(4 * time.Second)
	requireEmpty(t, tasks)

	clk.Advance(time.Second)
	drain(t, tasks)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}

	clk.Advance(time.Minute)
	requireEmpty(t, tasks)
}

func TestAfterZeroDelayPostsImmediately(t *testing.T) {
	clk := clock.Fake(time.Unix(1000, 0))
	tasks := make(chan func(), 8)
	scheduler := New(clk, tasks)

	fired := 0
	scheduler.After(0, func() { fired++ })

	drain(t, tasks)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
}

func TestCancelEveryStopsFuturePosts(t *testing.T) {
	clk := clock.Fake(time.Unix(1000, 0))
	tasks := make(chan func(), 8)
	scheduler := New(clk, tasks)

	handle := scheduler.Every(time.Second, func() {})
	scheduler.Cancel(handle)

	clk.Advance(10 * time.Second)
	requireEmpty(t, tasks)
}

func TestCancelAfterStopsPendingPost(t *testing.T) {
	clk := clock.Fake(time.Unix(1000, 0))
	tasks := make(chan func(), 8)
	scheduler := New(clk, tasks)

	handle := scheduler.After(time.Second, func() {})
	scheduler.Cancel(handle)

	clk.Advance(10 * time.Second)
	requireEmpty(t, tasks)
}

func TestCancelIsIdempotent(t *testing.T) {
	clk := clock.Fake(time.Unix(1000, 0))
	tasks := make(chan func(), 8)
	scheduler := New(clk, tasks)

	handle := scheduler.Every(time.Second, func() {})
	scheduler.Cancel(handle)
	scheduler.Cancel(handle)

	// The zero Handle is inert.
	scheduler.Cancel(Handle{})
}

func TestIndependentTimersInterleave(t *testing.T) {
	clk := clock.Fake(time.Unix(1000, 0))
	tasks := make(chan func(), 8)
	scheduler := New(clk, tasks)

	var order []string
	scheduler.Every(2*time.Second, func() { order = append(order, "tick") })
	scheduler.After(3*time.Second, func() { order = append(order, "shot") })

	clk.Advance(2 * time.Second)
	drain(t, tasks)
	clk.Advance(time.Second)
	drain(t, tasks)
	clk.Advance(time.Second)
	drain(t, tasks)

	want := []string{"tick", "shot", "tick"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}
