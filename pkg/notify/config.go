package notify

import (
	"fmt"
	"time"
)

// Config holds the engine's tunables. Zero-value fields fall back to the
// documented defaults; the struct is loadable from the environment via
// config.Load.
type Config struct {
	// ProcessInterval is the queue processor tick; one dequeue per tick.
	ProcessInterval time.Duration `env:"NOTIFY_PROCESS_INTERVAL" envDefault:"100ms"`

	// SweepInterval is the expiry sweeper tick.
	SweepInterval time.Duration `env:"NOTIFY_SWEEP_INTERVAL" envDefault:"5m"`

	// RateLimit is the maximum sends admitted per producer inside RateWindow.
	RateLimit  int           `env:"NOTIFY_RATE_LIMIT" envDefault:"10"`
	RateWindow time.Duration `env:"NOTIFY_RATE_WINDOW" envDefault:"60s"`

	// MaxStored caps the notification store; oldest entries are evicted.
	MaxStored int `env:"NOTIFY_MAX_STORED" envDefault:"100"`

	// EventBuffer is the per-subscriber event channel depth.
	EventBuffer int `env:"NOTIFY_EVENT_BUFFER" envDefault:"64"`
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		ProcessInterval: 100 * time.Millisecond,
		SweepInterval:   5 * time.Minute,
		RateLimit:       10,
		RateWindow:      time.Minute,
		MaxStored:       100,
		EventBuffer:     64,
	}
}

// withDefaults fills zero fields so New accepts a partially built Config.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.ProcessInterval == 0 {
		c.ProcessInterval = def.ProcessInterval
	}
	if c.SweepInterval == 0 {
		c.SweepInterval = def.SweepInterval
	}
	if c.RateLimit == 0 {
		c.RateLimit = def.RateLimit
	}
	if c.RateWindow == 0 {
		c.RateWindow = def.RateWindow
	}
	if c.MaxStored == 0 {
		c.MaxStored = def.MaxStored
	}
	if c.EventBuffer == 0 {
		c.EventBuffer = def.EventBuffer
	}
	return c
}

func (c Config) validate() error {
	if c.ProcessInterval < 0 || c.SweepInterval < 0 {
		return fmt.Errorf("%w: intervals must be positive", ErrInvalidConfig)
	}
	if c.RateLimit < 0 || c.RateWindow < 0 {
		return fmt.Errorf("%w: rate limit and window must be positive", ErrInvalidConfig)
	}
	if c.MaxStored < 0 {
		return fmt.Errorf("%w: max stored must be positive", ErrInvalidConfig)
	}
	return nil
}
