package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/async"
)

func TestAsync_Await(t *testing.T) {
	t.Parallel()

	f := async.Async(context.Background(), 21, func(ctx context.Context, n int) (int, error) {
		return n * 2, nil
	})

	result, err := f.Await()
	require.NoError(t, err)
	assert.Equal(t, 42, result)
}

func TestAsync_Error(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("boom")
	f := async.Async(context.Background(), "x", func(ctx context.Context, s string) (string, error) {
		return "", wantErr
	})

	_, err := f.Await()
	assert.ErrorIs(t, err, wantErr)
}

func TestAsync_PreCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := async.Async(ctx, 0, func(ctx context.Context, n int) (int, error) {
		t.Error("fn must not run with a cancelled context")
		return 0, nil
	})

	_, err := f.Await()
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAwaitWithTimeout(t *testing.T) {
	t.Parallel()

	t.Run("completes before timeout", func(t *testing.T) {
		t.Parallel()

		f := async.Async(context.Background(), 1, func(ctx context.Context, n int) (int, error) {
			return n, nil
		})

		result, err := f.AwaitWithTimeout(time.Second)
		require.NoError(t, err)
		assert.Equal(t, 1, result)
	})

	t.Run("times out", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		defer close(release)

		f := async.Async(context.Background(), 0, func(ctx context.Context, n int) (int, error) {
			<-release
			return n, nil
		})

		_, err := f.AwaitWithTimeout(10 * time.Millisecond)
		assert.ErrorIs(t, err, async.ErrTimeout)
	})
}

func TestIsComplete(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})

	f := async.Async(context.Background(), 0, func(ctx context.Context, n int) (int, error) {
		<-release
		return n, nil
	})

	assert.False(t, f.IsComplete())
	close(release)

	_, err := f.Await()
	require.NoError(t, err)
	assert.True(t, f.IsComplete())
}

func TestSettle(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("second failed")

	fns := []func(context.Context, int) (int, error){
		func(ctx context.Context, n int) (int, error) { return n, nil },
		func(ctx context.Context, n int) (int, error) { return 0, wantErr },
		func(ctx context.Context, n int) (int, error) {
			time.Sleep(20 * time.Millisecond)
			return n, nil
		},
	}

	futures := make([]*async.Future[int], len(fns))
	for i, fn := range fns {
		futures[i] = async.Async(context.Background(), i, fn)
	}

	outcomes := async.Settle(futures...)
	require.Len(t, outcomes, 3)

	// Every future settles; the failure in the middle does not
	// short-circuit the slow third future.
	assert.NoError(t, outcomes[0].Err)
	assert.Equal(t, 0, outcomes[0].Value)
	assert.ErrorIs(t, outcomes[1].Err, wantErr)
	assert.NoError(t, outcomes[2].Err)
	assert.Equal(t, 2, outcomes[2].Value)
}

func TestSettle_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, async.Settle[int]())
}
