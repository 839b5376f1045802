package notify

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ExportFormat selects the Export output encoding.
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportCSV  ExportFormat = "csv"
)

// exportDocument is the JSON export shape: full store, analytics, and the
// export timestamp.
type exportDocument struct {
	ExportedAt    time.Time         `json:"exported_at"`
	Notifications []Notification    `json:"notifications"`
	Analytics     AnalyticsSnapshot `json:"analytics"`
}

// Export serializes the current store and analytics. JSON output round-trips
// the full notification records; CSV is a flat projection of the core fields.
func (e *Engine) Export(format ExportFormat) (string, error) {
	e.mu.Lock()
	notifications := e.store.history(HistoryFilter{})
	snapshot := e.analytics.snapshot()
	e.mu.Unlock()

	switch format {
	case ExportJSON:
		doc := exportDocument{
			ExportedAt:    e.now(),
			Notifications: notifications,
			Analytics:     snapshot,
		}
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return "", fmt.Errorf("notify: export failed: %w", err)
		}
		return string(data), nil

	case ExportCSV:
		var sb strings.Builder
		w := csv.NewWriter(&sb)
		_ = w.Write([]string{"id", "title", "message", "type", "priority", "category", "created_at"})
		for _, n := range notifications {
			_ = w.Write([]string{
				n.ID,
				n.Title,
				n.Message,
				string(n.Type),
				string(n.Priority),
				n.Category,
				n.CreatedAt.Format(time.RFC3339),
			})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return "", fmt.Errorf("notify: export failed: %w", err)
		}
		return sb.String(), nil

	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidExportFormat, format)
	}
}
