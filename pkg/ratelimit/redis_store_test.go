package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/ratelimit"
)

func setupRedisStore(t *testing.T, clock *fakeClock) *ratelimit.RedisStore {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store, err := ratelimit.NewRedisStore(client, ratelimit.WithRedisTimeSource(clock.Now))
	require.NoError(t, err)
	return store
}

func TestNewRedisStore_NilClient(t *testing.T) {
	t.Parallel()

	_, err := ratelimit.NewRedisStore(nil)
	assert.ErrorIs(t, err, ratelimit.ErrInvalidConfig)
}

func TestRedisStore_Record(t *testing.T) {
	t.Parallel()

	cfg := ratelimit.Config{Limit: 3, Window: time.Minute}

	t.Run("allows up to limit", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		store := setupRedisStore(t, clock)

		for i := 0; i < 3; i++ {
			remaining, _, err := store.Record(context.Background(), "k", cfg)
			require.NoError(t, err)
			assert.Equal(t, 2-i, remaining)
		}

		remaining, resetAt, err := store.Record(context.Background(), "k", cfg)
		require.NoError(t, err)
		assert.Negative(t, remaining)
		assert.Equal(t, clock.Now().Add(time.Minute).UnixMilli(), resetAt.UnixMilli())
	})

	t.Run("window slides", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		store := setupRedisStore(t, clock)

		for i := 0; i < 3; i++ {
			_, _, err := store.Record(context.Background(), "k", cfg)
			require.NoError(t, err)
		}

		remaining, _, err := store.Record(context.Background(), "k", cfg)
		require.NoError(t, err)
		assert.Negative(t, remaining)

		clock.Advance(time.Minute + time.Second)

		remaining, _, err = store.Record(context.Background(), "k", cfg)
		require.NoError(t, err)
		assert.Equal(t, 2, remaining)
	})

	t.Run("keys are independent", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		store := setupRedisStore(t, clock)

		one := ratelimit.Config{Limit: 1, Window: time.Minute}

		remaining, _, err := store.Record(context.Background(), "a", one)
		require.NoError(t, err)
		assert.Equal(t, 0, remaining)

		remaining, _, err = store.Record(context.Background(), "b", one)
		require.NoError(t, err)
		assert.Equal(t, 0, remaining)
	})
}

func TestRedisStore_Reset(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	store := setupRedisStore(t, clock)

	one := ratelimit.Config{Limit: 1, Window: time.Minute}

	_, _, err := store.Record(context.Background(), "k", one)
	require.NoError(t, err)

	require.NoError(t, store.Reset(context.Background(), "k"))

	remaining, _, err := store.Record(context.Background(), "k", one)
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)
}

func TestRedisStore_WorksWithWindow(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	store := setupRedisStore(t, clock)

	limiter, err := ratelimit.NewWindow(store, ratelimit.Config{Limit: 2, Window: time.Minute})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		result, err := limiter.Allow(context.Background(), "k")
		require.NoError(t, err)
		assert.True(t, result.Allowed())
	}

	result, err := limiter.Allow(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, result.Allowed())
}
