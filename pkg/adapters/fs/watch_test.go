package fs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatchSeesExternalWrite(t *testing.T) {
	store := newTestFS(t)
	require.NoError(t, store.Write("notes", "initial"))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	changes, err := store.Watch(ctx, "notes", 20*time.Millisecond)
	require.NoError(t, err)

	// Simulate another process replacing the value.
	require.NoError(t, store.Write("notes", "changed"))

	select {
	case _, ok := <-changes:
		require.True(t, ok, "channel closed before delivering a change")
	case <-ctx.Done():
		t.Fatal("timed out waiting for change notification")
	}
}

func TestWatchCoalescesBursts(t *testing.T) {
	store := newTestFS(t)
	require.NoError(t, store.Write("notes", "v0"))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	changes, err := store.Watch(ctx, "notes", 50*time.Millisecond)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Write("notes", "burst"))
	}

	select {
	case <-changes:
	case <-ctx.Done():
		t.Fatal("timed out waiting for coalesced notification")
	}

	// The burst should have collapsed: after a quiet period no further
	// notification is pending.
	select {
	case <-changes:
		// A second notification is tolerated (the debounce window may have
		// split the burst) but a stream of them is not.
		select {
		case <-time.After(200 * time.Millisecond):
		case <-changes:
			t.Fatal("watch did not coalesce events")
		}
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatchStopsOnContextCancel(t *testing.T) {
	store := newTestFS(t)
	ctx, cancel := context.WithCancel(context.Background())

	changes, err := store.Watch(ctx, "notes", 10*time.Millisecond)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-changes:
		require.False(t, ok, "channel should close after cancel")
	case <-time.After(2 * time.Second):
		t.Fatal("channel did not close after context cancel")
	}
}

func TestWatchIgnoresOtherKeys(t *testing.T) {
	store := newTestFS(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := store.Watch(ctx, "notes", 10*time.Millisecond)
	require.NoError(t, err)

	require.NoError(t, store.Write("unrelated", "x"))

	select {
	case <-changes:
		t.Fatal("received notification for an unrelated key")
	case <-time.After(150 * time.Millisecond):
	}
}
