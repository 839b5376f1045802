package notify

import (
	"time"

	"github.com/dmitrymomot/notifykit/pkg/validator"
)

// Type classifies a notification for display and filtering purposes.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
	TypeSystem  Type = "system"
)

// Types returns all valid notification types.
func Types() []Type {
	return []Type{TypeInfo, TypeSuccess, TypeWarning, TypeError, TypeSystem}
}

// Priority orders notifications for dispatch: low < normal < high < critical.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityNormal   Priority = "normal"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Priorities returns all valid priorities in ascending order.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityNormal, PriorityHigh, PriorityCritical}
}

var priorityRank = map[Priority]int{
	PriorityLow:      0,
	PriorityNormal:   1,
	PriorityHigh:     2,
	PriorityCritical: 3,
}

func (p Priority) rank() int {
	return priorityRank[p]
}

// AtLeast reports whether p ranks at or above min.
func (p Priority) AtLeast(min Priority) bool {
	return p.rank() >= min.rank()
}

// Channel is a delivery surface with an independent enable preference and
// an independent delivery outcome per notification.
type Channel string

const (
	ChannelInApp   Channel = "in_app"
	ChannelSystem  Channel = "system"
	ChannelToast   Channel = "toast"
	ChannelBanner  Channel = "banner"
	ChannelEmail   Channel = "email"
	ChannelSMS     Channel = "sms"
	ChannelWebhook Channel = "webhook"
)

// Channels returns all built-in delivery channels.
func Channels() []Channel {
	return []Channel{
		ChannelInApp, ChannelSystem, ChannelToast, ChannelBanner,
		ChannelEmail, ChannelSMS, ChannelWebhook,
	}
}

// Action is an optional interactive affordance attached to a notification.
// Actions are side-effect-only and not retained past the notification's
// lifetime.
type Action struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Invocation string `json:"invocation,omitempty"`
	Style      string `json:"style,omitempty"`
}

// Notification is the core entity. The engine assigns ID and CreatedAt at
// admission; callers never set them.
type Notification struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Type     Type     `json:"type"`
	Priority Priority `json:"priority"`
	Category string   `json:"category,omitempty"`

	Actions  []Action       `json:"actions,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`

	// Read state is first class, not part of Metadata.
	Read   bool      `json:"read"`
	ReadAt time.Time `json:"read_at,omitzero"`

	Persistent         bool `json:"persistent,omitempty"`
	RequireInteraction bool `json:"require_interaction,omitempty"`
	Silent             bool `json:"silent,omitempty"`

	Sound string `json:"sound,omitempty"`
	Icon  string `json:"icon,omitempty"`
	Image string `json:"image,omitempty"`
	Badge string `json:"badge,omitempty"`
	Tag   string `json:"tag,omitempty"`

	CreatedAt   time.Time `json:"created_at"`
	DeliveredAt time.Time `json:"delivered_at,omitzero"`
	ExpiresAt   time.Time `json:"expires_at,omitzero"`
}

// IsExpired reports whether the notification's expiry time has passed.
// A zero ExpiresAt means it never auto-expires.
func (n Notification) IsExpired(now time.Time) bool {
	return !n.ExpiresAt.IsZero() && now.After(n.ExpiresAt)
}

func (n *Notification) markRead(now time.Time) {
	if n.Read {
		return
	}
	n.Read = true
	n.ReadAt = now
}

// Input is the caller-facing notification shape. The engine assigns the ID;
// Source identifies the producer for rate-limit scoping and is not retained
// on the stored notification.
type Input struct {
	Title    string
	Message  string
	Type     Type
	Priority Priority
	Category string
	Source   string

	Actions  []Action
	Metadata map[string]any

	Persistent         bool
	RequireInteraction bool
	Silent             bool

	Sound string
	Icon  string
	Image string
	Badge string
	Tag   string

	ExpiresAt time.Time
}

const (
	maxTitleLen   = 100
	maxMessageLen = 500
)

// normalize applies field defaults before validation.
func (in *Input) normalize() {
	if in.Type == "" {
		in.Type = TypeInfo
	}
	if in.Priority == "" {
		in.Priority = PriorityNormal
	}
}

func (in Input) validate() error {
	return validator.Apply(
		validator.RequiredString("title", in.Title),
		validator.MaxLenString("title", in.Title, maxTitleLen),
		validator.RequiredString("message", in.Message),
		validator.MaxLenString("message", in.Message, maxMessageLen),
		validator.InList("type", in.Type, Types()),
		validator.InList("priority", in.Priority, Priorities()),
	)
}

// build materializes the admitted notification.
func (in Input) build(id string, now time.Time) Notification {
	return Notification{
		ID:                 id,
		Title:              in.Title,
		Message:            in.Message,
		Type:               in.Type,
		Priority:           in.Priority,
		Category:           in.Category,
		Actions:            in.Actions,
		Metadata:           in.Metadata,
		Persistent:         in.Persistent,
		RequireInteraction: in.RequireInteraction,
		Silent:             in.Silent,
		Sound:              in.Sound,
		Icon:               in.Icon,
		Image:              in.Image,
		Badge:              in.Badge,
		Tag:                in.Tag,
		CreatedAt:          now,
		ExpiresAt:          in.ExpiresAt,
	}
}
