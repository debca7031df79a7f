package debounce

import (
	"sync/atomic"
	"testing"
	"time"
)

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}

func TestDebouncerCollapsesBursts(t *testing.T) {
	var fires atomic.Int32
	d := New(30*time.Millisecond, func() { fires.Add(1) })

	for i := 0; i < 5; i++ {
		d.Trigger()
		time.Sleep(5 * time.Millisecond)
	}

	if !waitFor(t, time.Second, func() bool { return fires.Load() == 1 }) {
		t.Fatalf("fires = %d, want exactly 1", fires.Load())
	}

	// Quiet period elapsed; a fresh trigger fires again.
	d.Trigger()
	if !waitFor(t, time.Second, func() bool { return fires.Load() == 2 }) {
		t.Fatalf("fires = %d, want 2", fires.Load())
	}
}

func TestDebouncerCancel(t *testing.T) {
	var fires atomic.Int32
	d := New(20*time.Millisecond, func() { fires.Add(1) })

	d.Trigger()
	d.Cancel()

	time.Sleep(80 * time.Millisecond)
	if got := fires.Load(); got != 0 {
		t.Fatalf("fires = %d after cancel, want 0", got)
	}
}

func TestSchedulerLatestWinsPerKey(t *testing.T) {
	var first, second atomic.Int32
	s := NewScheduler()
	defer s.Stop()

	s.Schedule("save", 30*time.Millisecond, func() { first.Add(1) })
	s.Schedule("save", 30*time.Millisecond, func() { second.Add(1) })

	if !waitFor(t, time.Second, func() bool { return second.Load() == 1 }) {
		t.Fatal("replacement action never fired")
	}
	if got := first.Load(); got != 0 {
		t.Fatalf("superseded action fired %d times", got)
	}
}

func TestSchedulerKeysAreIndependent(t *testing.T) {
	var a, b atomic.Int32
	s := NewScheduler()
	defer s.Stop()

	s.Schedule("a", 20*time.Millisecond, func() { a.Add(1) })
	s.Schedule("b", 20*time.Millisecond, func() { b.Add(1) })

	ok := waitFor(t, time.Second, func() bool { return a.Load() == 1 && b.Load() == 1 })
	if !ok {
		t.Fatalf("a = %d, b = %d, want both 1", a.Load(), b.Load())
	}
}

func TestSchedulerCancel(t *testing.T) {
	var fires atomic.Int32
	s := NewScheduler()
	defer s.Stop()

	s.Schedule("save", 20*time.Millisecond, func() { fires.Add(1) })
	s.Cancel("save")

	time.Sleep(80 * time.Millisecond)
	if got := fires.Load(); got != 0 {
		t.Fatalf("fires = %d after cancel, want 0", got)
	}
}

func TestSchedulerStopCancelsAll(t *testing.T) {
	var fires atomic.Int32
	s := NewScheduler()

	s.Schedule("a", 20*time.Millisecond, func() { fires.Add(1) })
	s.Schedule("b", 20*time.Millisecond, func() { fires.Add(1) })
	s.Stop()

	time.Sleep(80 * time.Millisecond)
	if got := fires.Load(); got != 0 {
		t.Fatalf("fires = %d after stop, want 0", got)
	}
}
