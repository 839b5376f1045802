package ratelimit

import (
	"context"
	"time"
)

// Store defines the interface for rate limit ledger backends.
type Store interface {
	// Record prunes ledger entries older than the window, then attempts to
	// record one admission for key. On success remaining is the capacity
	// left after recording; when the window is full no entry is recorded
	// and remaining is negative. resetAt is when the oldest remaining
	// entry falls out of the window.
	Record(ctx context.Context, key string, config Config) (remaining int, resetAt time.Time, err error)

	// Reset clears the ledger for the given key.
	Reset(ctx context.Context, key string) error
}
