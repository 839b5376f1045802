// Package async provides lightweight futures for running functions
// concurrently and joining their results.
//
// Async starts a computation in its own goroutine and returns a Future:
//
//	f := async.Async(ctx, url, fetch)
//	body, err := f.Await()
//
// Settle joins a batch of futures without short-circuiting: every future is
// awaited regardless of individual failures, and all outcomes are returned
// in order. This is the join primitive for fan-out operations where partial
// failure is an expected, per-item result rather than a batch abort.
//
//	outcomes := async.Settle(futures...)
//	for _, o := range outcomes {
//		if o.Err != nil { ... }
//	}
package async
