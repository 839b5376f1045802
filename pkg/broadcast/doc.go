// Package broadcast provides type-safe in-process fan-out of values to
// multiple subscribers.
//
// A Broadcaster delivers every published value to every active subscriber.
// Delivery is non-blocking: each subscriber has a bounded buffer, and a
// subscriber that falls behind has values dropped rather than stalling the
// publisher. This makes the package suitable for event streams where the
// publisher must never be coupled to consumer speed.
//
//	events := broadcast.NewMemoryBroadcaster[Event](64)
//	defer events.Close()
//
//	sub := events.Subscribe(ctx)
//	go func() {
//		for ev := range sub.Receive() {
//			handle(ev)
//		}
//	}()
//
//	_ = events.Publish(ctx, Event{Type: "delivered"})
//
// Subscriptions are tied to the context passed to Subscribe and are cleaned
// up automatically on cancellation.
package broadcast
