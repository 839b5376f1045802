package ratelimit_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/ratelimit"
)

// fakeClock is a manually advanced time source for deterministic window tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestMemoryStore_Record(t *testing.T) {
	t.Parallel()

	cfg := ratelimit.Config{Limit: 3, Window: time.Minute}

	t.Run("allows up to limit", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		store := ratelimit.NewMemoryStore(
			ratelimit.WithTimeSource(clock.Now),
			ratelimit.WithCleanupInterval(0),
		)
		defer store.Close()

		for i := 0; i < 3; i++ {
			remaining, _, err := store.Record(context.Background(), "k", cfg)
			require.NoError(t, err)
			assert.Equal(t, 2-i, remaining)
		}

		remaining, resetAt, err := store.Record(context.Background(), "k", cfg)
		require.NoError(t, err)
		assert.Negative(t, remaining)
		assert.Equal(t, clock.Now().Add(time.Minute), resetAt)
	})

	t.Run("window slides", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		store := ratelimit.NewMemoryStore(
			ratelimit.WithTimeSource(clock.Now),
			ratelimit.WithCleanupInterval(0),
		)
		defer store.Close()

		for i := 0; i < 3; i++ {
			_, _, err := store.Record(context.Background(), "k", cfg)
			require.NoError(t, err)
		}

		remaining, _, err := store.Record(context.Background(), "k", cfg)
		require.NoError(t, err)
		assert.Negative(t, remaining)

		// Once the window elapses the old entries are pruned and
		// capacity is available again.
		clock.Advance(time.Minute + time.Second)

		remaining, _, err = store.Record(context.Background(), "k", cfg)
		require.NoError(t, err)
		assert.Equal(t, 2, remaining)
	})

	t.Run("denied calls do not consume capacity", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		store := ratelimit.NewMemoryStore(
			ratelimit.WithTimeSource(clock.Now),
			ratelimit.WithCleanupInterval(0),
		)
		defer store.Close()

		one := ratelimit.Config{Limit: 1, Window: time.Minute}

		_, _, err := store.Record(context.Background(), "k", one)
		require.NoError(t, err)

		// Hammering a full window must not extend the denial period.
		for i := 0; i < 5; i++ {
			clock.Advance(10 * time.Second)
			remaining, _, err := store.Record(context.Background(), "k", one)
			require.NoError(t, err)
			assert.Negative(t, remaining)
		}

		clock.Advance(11 * time.Second) // first entry is now outside the window
		remaining, _, err := store.Record(context.Background(), "k", one)
		require.NoError(t, err)
		assert.Equal(t, 0, remaining)
	})

	t.Run("keys are independent", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		store := ratelimit.NewMemoryStore(
			ratelimit.WithTimeSource(clock.Now),
			ratelimit.WithCleanupInterval(0),
		)
		defer store.Close()

		one := ratelimit.Config{Limit: 1, Window: time.Minute}

		remaining, _, err := store.Record(context.Background(), "a", one)
		require.NoError(t, err)
		assert.Equal(t, 0, remaining)

		remaining, _, err = store.Record(context.Background(), "b", one)
		require.NoError(t, err)
		assert.Equal(t, 0, remaining)
	})
}

func TestMemoryStore_Reset(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	store := ratelimit.NewMemoryStore(
		ratelimit.WithTimeSource(clock.Now),
		ratelimit.WithCleanupInterval(0),
	)
	defer store.Close()

	one := ratelimit.Config{Limit: 1, Window: time.Minute}

	_, _, err := store.Record(context.Background(), "k", one)
	require.NoError(t, err)

	require.NoError(t, store.Reset(context.Background(), "k"))

	remaining, _, err := store.Record(context.Background(), "k", one)
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)
}

func TestMemoryStore_CloseIdempotent(t *testing.T) {
	t.Parallel()

	store := ratelimit.NewMemoryStore()
	require.NoError(t, store.Close())
	require.NoError(t, store.Close())
}
