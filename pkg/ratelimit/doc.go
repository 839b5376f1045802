// Package ratelimit provides sliding-window admission control with
// pluggable ledger storage.
//
// A Window limiter tracks individual admission timestamps inside a trailing
// time window. Each Allow call first prunes ledger entries older than the
// window, then records a new entry if fewer than the configured limit
// remain. Every call weighs one unit.
//
//	store := ratelimit.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimit.NewWindow(store, ratelimit.Config{
//		Limit:  10,
//		Window: time.Minute,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := limiter.Allow(ctx, "producer:app")
//	if err != nil {
//		return err
//	}
//	if !result.Allowed() {
//		// Denied; capacity frees up at result.ResetAt.
//		return errTooManyRequests
//	}
//
// Two stores are provided: MemoryStore for single-process use and
// RedisStore (sorted sets) when the window must be shared across processes.
package ratelimit
