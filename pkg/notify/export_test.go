package notify_test

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/notify"
)

// exportEngine returns an engine whose sends land directly in the store.
func exportEngine(t *testing.T) *notify.Engine {
	t.Helper()

	prefs := notify.DefaultPreferences()
	prefs.DoNotDisturb = true

	engine, err := notify.New(notify.Config{RateLimit: 100}, notify.WithPreferences(prefs))
	require.NoError(t, err)
	t.Cleanup(func() { _ = engine.Close() })
	return engine
}

func TestEngine_ExportJSONRoundTrip(t *testing.T) {
	t.Parallel()

	engine := exportEngine(t)
	ctx := context.Background()

	ids := make(map[string]bool)
	for _, category := range []string{"ci", "ops", "ci"} {
		in := notify.Input{Title: "t", Message: "m", Category: category}
		id, err := engine.Send(ctx, in)
		require.NoError(t, err)
		ids[id] = true
	}
	snapshotAtExport := engine.Analytics()

	out, err := engine.Export(notify.ExportJSON)
	require.NoError(t, err)

	var doc struct {
		ExportedAt    time.Time                `json:"exported_at"`
		Notifications []notify.Notification    `json:"notifications"`
		Analytics     notify.AnalyticsSnapshot `json:"analytics"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.False(t, doc.ExportedAt.IsZero())
	require.Len(t, doc.Notifications, len(ids))
	for _, n := range doc.Notifications {
		assert.True(t, ids[n.ID], "exported unknown id %s", n.ID)
	}
	assert.Equal(t, snapshotAtExport.Sent, doc.Analytics.Sent)
	assert.Equal(t, snapshotAtExport.ByCategory, doc.Analytics.ByCategory)
}

func TestEngine_ExportCSV(t *testing.T) {
	t.Parallel()

	engine := exportEngine(t)
	ctx := context.Background()

	in := notify.Input{
		Title:    "deploy, finished",
		Message:  "v2 is \"live\"",
		Type:     notify.TypeSuccess,
		Priority: notify.PriorityHigh,
		Category: "ci",
	}
	id, err := engine.Send(ctx, in)
	require.NoError(t, err)

	out, err := engine.Export(notify.ExportCSV)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []string{"id", "title", "message", "type", "priority", "category", "created_at"}, records[0])
	row := records[1]
	assert.Equal(t, id, row[0])
	assert.Equal(t, "deploy, finished", row[1])
	assert.Equal(t, `v2 is "live"`, row[2])
	assert.Equal(t, "success", row[3])
	assert.Equal(t, "high", row[4])
	assert.Equal(t, "ci", row[5])

	_, err = time.Parse(time.RFC3339, row[6])
	assert.NoError(t, err)
}

func TestEngine_ExportInvalidFormat(t *testing.T) {
	t.Parallel()

	engine := exportEngine(t)
	_, err := engine.Export("xml")
	assert.ErrorIs(t, err, notify.ErrInvalidExportFormat)
}
