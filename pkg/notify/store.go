package notify

import "time"

// HistoryFilter selects a slice of stored notifications.
// Zero Limit means no cap; empty Category means all categories.
type HistoryFilter struct {
	Limit    int
	Category string
}

// memoryStore retains delivered notifications most-recent-first, capped at
// max entries. Not safe for concurrent use; the engine mutex guards it.
type memoryStore struct {
	items []Notification
	max   int
}

func newMemoryStore(max int) *memoryStore {
	return &memoryStore{max: max}
}

// insert prepends the notification, evicting the oldest entry on overflow.
func (s *memoryStore) insert(n Notification) {
	s.items = append([]Notification{n}, s.items...)
	if s.max > 0 && len(s.items) > s.max {
		s.items = s.items[:s.max]
	}
}

// setMax updates the cap and evicts immediately when the store exceeds it.
func (s *memoryStore) setMax(max int) {
	s.max = max
	if s.max > 0 && len(s.items) > s.max {
		s.items = s.items[:s.max]
	}
}

func (s *memoryStore) get(id string) *Notification {
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i]
		}
	}
	return nil
}

func (s *memoryStore) markRead(id string, now time.Time) bool {
	n := s.get(id)
	if n == nil {
		return false
	}
	n.markRead(now)
	return true
}

// markAllRead marks every stored notification read and returns how many
// were previously unread. The store size never changes.
func (s *memoryStore) markAllRead(now time.Time) int {
	count := 0
	for i := range s.items {
		if !s.items[i].Read {
			s.items[i].markRead(now)
			count++
		}
	}
	return count
}

// dismiss removes the notification and returns it for event emission.
func (s *memoryStore) dismiss(id string) (Notification, bool) {
	for i := range s.items {
		if s.items[i].ID == id {
			n := s.items[i]
			s.items = append(s.items[:i], s.items[i+1:]...)
			return n, true
		}
	}
	return Notification{}, false
}

// history returns a filtered, capped copy, most recent first.
func (s *memoryStore) history(f HistoryFilter) []Notification {
	out := make([]Notification, 0, len(s.items))
	for _, n := range s.items {
		if f.Category != "" && n.Category != f.Category {
			continue
		}
		out = append(out, n)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out
}

// sweepExpired removes and returns every notification past its expiry.
func (s *memoryStore) sweepExpired(now time.Time) []Notification {
	var expired []Notification
	kept := s.items[:0]
	for _, n := range s.items {
		if n.IsExpired(now) {
			expired = append(expired, n)
			continue
		}
		kept = append(kept, n)
	}
	s.items = kept
	return expired
}

func (s *memoryStore) len() int {
	return len(s.items)
}
