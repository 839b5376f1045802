package notify

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/notifykit/pkg/logger"
)

// Sender delivers one notification on one channel.
//
// The boolean return distinguishes "delivered" from "channel not
// deliverable": (false, nil) means the channel declined the notification
// without a fault (no permission, no recipient configured) and moves no
// counters. A non-nil error is a delivery failure.
type Sender interface {
	Send(ctx context.Context, n Notification) (bool, error)
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, n Notification) (bool, error)

func (f SenderFunc) Send(ctx context.Context, n Notification) (bool, error) {
	return f(ctx, n)
}

// PlatformNotifier is the host platform's notification surface, consumed by
// the in-app channel. Display is only called when permission is granted.
type PlatformNotifier interface {
	PermissionGranted() bool
	Display(ctx context.Context, n Notification) error
}

// inAppSender bridges to the platform notification surface. A nil platform
// or missing permission is the normal not-deliverable outcome.
type inAppSender struct {
	platform PlatformNotifier
}

func (s *inAppSender) Send(ctx context.Context, n Notification) (bool, error) {
	if s.platform == nil || !s.platform.PermissionGranted() {
		return false, nil
	}
	if err := s.platform.Display(ctx, n); err != nil {
		return false, err
	}
	return true, nil
}

// localSender is an always-succeeding display surface for the system, toast,
// and banner channels. It stands in for real OS-level integration and logs
// each delivery.
type localSender struct {
	channel Channel
	log     *slog.Logger
}

func (s *localSender) Send(ctx context.Context, n Notification) (bool, error) {
	s.log.InfoContext(ctx, "notification displayed",
		logger.Channel(string(s.channel)),
		logger.NotificationID(n.ID),
		slog.String("title", n.Title),
	)
	return true, nil
}
