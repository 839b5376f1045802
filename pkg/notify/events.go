package notify

import "time"

// EventType identifies a lifecycle transition.
type EventType string

const (
	EventQueued    EventType = "queued"
	EventDelivered EventType = "delivered"
	EventFailed    EventType = "failed"
	EventClicked   EventType = "clicked"
	EventDismissed EventType = "dismissed"
	EventUpdated   EventType = "updated"
	EventAllRead   EventType = "all_read"
	EventError     EventType = "error"
)

// DismissReason records why a notification left the store.
type DismissReason string

const (
	DismissedByUser  DismissReason = "user"
	DismissedExpired DismissReason = "expired"
)

// Event is one lifecycle transition published on the engine's event stream.
// Notification is set for per-notification events; Channel for per-channel
// delivery outcomes; Err carries the failure description on failed and
// error events; Op names the originating operation on error events.
type Event struct {
	Type         EventType     `json:"type"`
	Notification *Notification `json:"notification,omitempty"`
	Channel      Channel       `json:"channel,omitempty"`
	Reason       DismissReason `json:"reason,omitempty"`
	Err          string        `json:"error,omitempty"`
	Op           string        `json:"op,omitempty"`
	Timestamp    time.Time     `json:"timestamp"`
}
