package notify

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/notifykit/pkg/async"
	"github.com/dmitrymomot/notifykit/pkg/logger"
)

var errNoSender = errors.New("no sender registered for channel")

type sendOutcome struct {
	channel   Channel
	delivered bool
}

// dispatch fans the notification out to every enabled requested channel
// concurrently and waits for the whole batch to settle before publishing
// any state. Partial failure is normal; a notification may deliver on some
// channels and fail on others.
func (e *Engine) dispatch(ctx context.Context, item queueItem) {
	e.mu.Lock()
	enabled := make([]Channel, 0, len(item.channels))
	for _, ch := range item.channels {
		if e.prefs.channelAllowed(item.n, ch) {
			enabled = append(enabled, ch)
		}
	}
	e.mu.Unlock()

	now := e.now()
	n := item.n
	n.DeliveredAt = now

	// Zero enabled channels is a silent store move; no counters.
	if len(enabled) == 0 {
		e.mu.Lock()
		e.store.insert(n)
		e.mu.Unlock()
		return
	}

	futures := make([]*async.Future[sendOutcome], len(enabled))
	for i, ch := range enabled {
		sender := e.senders[ch]
		futures[i] = async.Async(ctx, ch, func(ctx context.Context, ch Channel) (sendOutcome, error) {
			if sender == nil {
				return sendOutcome{channel: ch}, errNoSender
			}
			ok, err := sender.Send(ctx, n)
			return sendOutcome{channel: ch, delivered: ok}, err
		})
	}
	outcomes := async.Settle(futures...)

	delivered, failed := 0, 0
	for _, o := range outcomes {
		switch {
		case o.Err != nil:
			failed++
		case o.Value.delivered:
			delivered++
		}
	}

	e.mu.Lock()
	e.store.insert(n)
	e.analytics.delivered += delivered
	e.analytics.failed += failed
	e.mu.Unlock()

	for _, o := range outcomes {
		switch {
		case o.Err != nil:
			e.emit(Event{
				Type:         EventFailed,
				Notification: &n,
				Channel:      o.Value.channel,
				Err:          o.Err.Error(),
			})
			e.log.ErrorContext(ctx, "channel send failed",
				logger.Component("notify"),
				logger.NotificationID(n.ID),
				logger.Channel(string(o.Value.channel)),
				logger.Error(o.Err),
			)
		case o.Value.delivered:
			e.emit(Event{
				Type:         EventDelivered,
				Notification: &n,
				Channel:      o.Value.channel,
			})
		default:
			// Channel declined without fault (no permission, no recipient).
			e.log.DebugContext(ctx, "channel not deliverable",
				logger.NotificationID(n.ID),
				logger.Channel(string(o.Value.channel)),
			)
		}
	}

	e.log.DebugContext(ctx, "dispatch settled",
		logger.NotificationID(n.ID),
		slog.Int("delivered", delivered),
		slog.Int("failed", failed),
	)
}
