package ratelimit

import (
	"context"
	"sync"
	"time"
)

// ledger holds the admission timestamps for a single key.
type ledger struct {
	entries    []time.Time
	lastAccess time.Time
}

// MemoryStore implements Store with an in-process timestamp ledger per key.
// Entries older than the window are pruned lazily on each Record call; a
// background goroutine removes keys that have gone stale entirely.
type MemoryStore struct {
	mu      sync.Mutex
	ledgers map[string]*ledger

	now             func() time.Time
	cleanupInterval time.Duration
	stopCleanup     chan struct{}
	cleanupOnce     sync.Once
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval sets how often stale ledgers are removed.
// Set to 0 to disable background cleanup.
func WithCleanupInterval(interval time.Duration) MemoryStoreOption {
	return func(s *MemoryStore) {
		s.cleanupInterval = interval
	}
}

// WithTimeSource overrides the wall clock. Intended for tests.
func WithTimeSource(now func() time.Time) MemoryStoreOption {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewMemoryStore creates an in-memory ledger store.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		ledgers:         make(map[string]*ledger),
		now:             time.Now,
		cleanupInterval: 5 * time.Minute,
		stopCleanup:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.cleanupInterval > 0 {
		go s.cleanupLoop()
	}

	return s
}

// Record prunes expired entries for key, then records one admission when
// capacity remains. Denied calls leave the ledger untouched.
func (s *MemoryStore) Record(ctx context.Context, key string, config Config) (int, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	l, exists := s.ledgers[key]
	if !exists {
		l = &ledger{}
		s.ledgers[key] = l
	}
	l.lastAccess = now

	// Lazy prune: drop entries that have left the trailing window.
	cutoff := now.Add(-config.Window)
	valid := l.entries[:0]
	for _, ts := range l.entries {
		if ts.After(cutoff) {
			valid = append(valid, ts)
		}
	}
	l.entries = valid

	if len(l.entries) >= config.Limit {
		resetAt := l.entries[0].Add(config.Window)
		return -1, resetAt, nil
	}

	l.entries = append(l.entries, now)
	return config.Limit - len(l.entries), l.entries[0].Add(config.Window), nil
}

// Reset removes the ledger for the given key.
func (s *MemoryStore) Reset(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.ledgers, key)
	return nil
}

func (s *MemoryStore) cleanupLoop() {
	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.removeStale()
		case <-s.stopCleanup:
			return
		}
	}
}

// removeStale drops ledgers that have not been touched for an hour.
func (s *MemoryStore) removeStale() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-time.Hour)
	for key, l := range s.ledgers {
		if l.lastAccess.Before(cutoff) {
			delete(s.ledgers, key)
		}
	}
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (s *MemoryStore) Close() error {
	s.cleanupOnce.Do(func() {
		close(s.stopCleanup)
	})
	return nil
}
