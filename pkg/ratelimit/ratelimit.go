package ratelimit

import (
	"context"
	"fmt"
)

// Limiter defines the interface for rate limiting implementations.
type Limiter interface {
	Allow(ctx context.Context, key string) (*Result, error)
}

// Window implements sliding-window rate limiting over a Store.
// Each admission records one ledger entry; a call is allowed while fewer
// than Config.Limit entries fall inside the trailing Config.Window.
type Window struct {
	store  Store
	config Config
}

// NewWindow creates a sliding-window rate limiter.
func NewWindow(store Store, config Config) (*Window, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: store is required", ErrInvalidConfig)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}

	return &Window{
		store:  store,
		config: config,
	}, nil
}

// Allow records an admission attempt for key. When capacity remains inside
// the window the entry is recorded and the result is allowed; otherwise no
// entry is recorded and the result reports when capacity frees up.
func (w *Window) Allow(ctx context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	remaining, resetAt, err := w.store.Record(ctx, key, w.config)
	if err != nil {
		return nil, err
	}

	return &Result{
		Limit:     w.config.Limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}

// Reset clears the ledger for the given key.
func (w *Window) Reset(ctx context.Context, key string) error {
	if key == "" {
		return ErrKeyRequired
	}
	return w.store.Reset(ctx, key)
}

func (c Config) validate() error {
	if c.Limit <= 0 {
		return fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidConfig, c.Limit)
	}
	if c.Window <= 0 {
		return fmt.Errorf("%w: window must be positive, got %v", ErrInvalidConfig, c.Window)
	}
	return nil
}
