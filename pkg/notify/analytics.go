package notify

import "time"

// analytics accumulates lifecycle counters. Derived figures are computed at
// snapshot time, never maintained as separate state. Not safe for concurrent
// use; the engine mutex guards it.
type analytics struct {
	sent      int
	delivered int
	clicked   int
	dismissed int
	expired   int
	failed    int

	byCategory map[string]int
	byHour     [24]int

	// Accumulated delivered-to-removal durations back AverageDisplayTime.
	displayTotal time.Duration
	displayCount int
}

func newAnalytics() *analytics {
	return &analytics{byCategory: make(map[string]int)}
}

// recordSent counts an admission into the category and hour histograms.
func (a *analytics) recordSent(n Notification) {
	a.sent++
	if n.Category != "" {
		a.byCategory[n.Category]++
	}
	a.byHour[n.CreatedAt.Hour()]++
}

// recordDisplay accumulates one delivered-to-removal duration.
func (a *analytics) recordDisplay(n Notification, removedAt time.Time) {
	if n.DeliveredAt.IsZero() {
		return
	}
	a.displayTotal += removedAt.Sub(n.DeliveredAt)
	a.displayCount++
}

func (a *analytics) reset() {
	*a = analytics{byCategory: make(map[string]int)}
}

// AnalyticsSnapshot is an immutable copy of the engine's counters with
// derived figures computed at read time.
type AnalyticsSnapshot struct {
	Sent      int `json:"sent"`
	Delivered int `json:"delivered"`
	Clicked   int `json:"clicked"`
	Dismissed int `json:"dismissed"`
	Expired   int `json:"expired"`
	Failed    int `json:"failed"`

	ByCategory map[string]int `json:"by_category"`
	ByHour     [24]int        `json:"by_hour"`

	ClickThroughRate   float64       `json:"click_through_rate"`
	AverageDisplayTime time.Duration `json:"average_display_time"`
}

func (a *analytics) snapshot() AnalyticsSnapshot {
	snap := AnalyticsSnapshot{
		Sent:      a.sent,
		Delivered: a.delivered,
		Clicked:   a.clicked,
		Dismissed: a.dismissed,
		Expired:   a.expired,
		Failed:    a.failed,
		ByHour:    a.byHour,

		ByCategory: make(map[string]int, len(a.byCategory)),
	}
	for cat, count := range a.byCategory {
		snap.ByCategory[cat] = count
	}

	if a.delivered > 0 {
		snap.ClickThroughRate = float64(a.clicked) / float64(a.delivered)
	}
	if a.displayCount > 0 {
		snap.AverageDisplayTime = a.displayTotal / time.Duration(a.displayCount)
	}
	return snap
}
