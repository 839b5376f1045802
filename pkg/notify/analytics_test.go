package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAnalytics_Snapshot(t *testing.T) {
	t.Parallel()

	morning := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

	a := newAnalytics()
	a.recordSent(Notification{Category: "ops", CreatedAt: morning})
	a.recordSent(Notification{Category: "ops", CreatedAt: morning.Add(time.Minute)})
	a.recordSent(Notification{CreatedAt: morning.Add(5 * time.Hour)})
	a.delivered = 4
	a.clicked = 1
	a.failed = 2

	snap := a.snapshot()
	assert.Equal(t, 3, snap.Sent)
	assert.Equal(t, 2, snap.ByCategory["ops"])
	assert.Equal(t, 2, snap.ByHour[9])
	assert.Equal(t, 1, snap.ByHour[14])
	assert.InDelta(t, 0.25, snap.ClickThroughRate, 1e-9)
}

func TestAnalytics_DerivedFiguresZeroSafe(t *testing.T) {
	t.Parallel()

	snap := newAnalytics().snapshot()
	assert.Zero(t, snap.ClickThroughRate)
	assert.Zero(t, snap.AverageDisplayTime)
}

func TestAnalytics_AverageDisplayTime(t *testing.T) {
	t.Parallel()

	delivered := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	a := newAnalytics()
	a.recordDisplay(Notification{DeliveredAt: delivered}, delivered.Add(10*time.Second))
	a.recordDisplay(Notification{DeliveredAt: delivered}, delivered.Add(30*time.Second))
	// Never-delivered notifications contribute nothing.
	a.recordDisplay(Notification{}, delivered.Add(time.Hour))

	assert.Equal(t, 20*time.Second, a.snapshot().AverageDisplayTime)
}

func TestAnalytics_SnapshotIsCopy(t *testing.T) {
	t.Parallel()

	a := newAnalytics()
	a.recordSent(Notification{Category: "ops", CreatedAt: time.Now()})

	snap := a.snapshot()
	snap.ByCategory["ops"] = 99
	assert.Equal(t, 1, a.byCategory["ops"])
}

func TestAnalytics_Reset(t *testing.T) {
	t.Parallel()

	a := newAnalytics()
	a.recordSent(Notification{Category: "ops", CreatedAt: time.Now()})
	a.delivered = 3
	a.reset()

	snap := a.snapshot()
	assert.Zero(t, snap.Sent)
	assert.Zero(t, snap.Delivered)
	assert.Empty(t, snap.ByCategory)
}
