// Package notify implements a priority-ordered notification dispatch
// pipeline with multi-channel fan-out, sliding-window rate limiting,
// quiet-hours and do-not-disturb suppression, a bounded history store with
// read state, usage analytics, and an observable lifecycle event stream.
//
// Data flows one direction: a producer calls Send, the input is validated
// and rate limited, checked against preferences, and enqueued by priority.
// A background processor drains one notification per tick and fans it out
// concurrently to the enabled channels; outcomes land in the store and
// analytics and are published as events. A second background task evicts
// expired notifications from the store.
//
//	engine, err := notify.New(notify.DefaultConfig(),
//		notify.WithLogger(log),
//		notify.WithSender(notify.ChannelEmail, notify.NewEmailChannel(mailer, "ops@example.com")),
//	)
//	if err != nil {
//		return err
//	}
//	if err := engine.Start(ctx); err != nil {
//		return err
//	}
//	defer engine.Close()
//
//	id, err := engine.Send(ctx, notify.Input{
//		Title:    "Deploy finished",
//		Message:  "v2.4.1 is live",
//		Priority: notify.PriorityHigh,
//	}, notify.ChannelInApp, notify.ChannelEmail)
//
// The engine is in-memory for its process lifetime; nothing is persisted.
// Send is the only operation that fails synchronously (validation or rate
// limit); every downstream failure is reported on the event stream.
package notify
