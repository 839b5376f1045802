package broadcast

import (
	"context"
	"sync"
)

// Subscriber receives values published to a Broadcaster.
// Implementations must be safe for concurrent use.
type Subscriber[T any] interface {
	// Receive returns the channel on which published values arrive.
	// The channel is closed when the subscriber is closed.
	Receive() <-chan T

	// Close closes the subscriber and releases its resources.
	// Close is idempotent.
	Close() error
}

// Broadcaster publishes values to multiple subscribers.
// Implementations must handle slow consumers by dropping values
// rather than blocking the publisher.
type Broadcaster[T any] interface {
	// Subscribe creates a subscriber that receives all subsequently
	// published values. When ctx is cancelled the subscription is
	// cleaned up automatically.
	Subscribe(ctx context.Context) Subscriber[T]

	// Publish delivers v to every active subscriber. Values may be
	// dropped for subscribers whose buffers are full.
	Publish(ctx context.Context, v T) error

	// Close shuts down the broadcaster and closes all subscribers.
	Close() error
}

type subscriber[T any] struct {
	ch     chan T
	closed bool
	mu     sync.RWMutex
}

func newSubscriber[T any](bufferSize int) *subscriber[T] {
	return &subscriber[T]{
		ch: make(chan T, bufferSize),
	}
}

func (s *subscriber[T]) Receive() <-chan T {
	return s.ch
}

func (s *subscriber[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
	return nil
}

// send attempts a non-blocking delivery. Returns false when the
// subscriber is closed or its buffer is full.
func (s *subscriber[T]) send(v T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- v:
		return true
	default:
		return false
	}
}
