package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/logger"
)

func TestNew_JSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithFormat(logger.FormatJSON),
		logger.WithOutput(&buf),
		logger.WithAttr(logger.Component("engine")),
	)

	log.Info("hello", logger.Channel("email"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "engine", record["component"])
	assert.Equal(t, "email", record["channel"])
}

func TestNew_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithLevel(slog.LevelWarn),
	)

	log.Info("dropped")
	assert.Empty(t, buf.String())

	log.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		attr slog.Attr
		key  string
	}{
		{name: "error", attr: logger.Error(errors.New("x")), key: "error"},
		{name: "component", attr: logger.Component("c"), key: "component"},
		{name: "event", attr: logger.Event("queued"), key: "event"},
		{name: "notification id", attr: logger.NotificationID("n1"), key: "notification_id"},
		{name: "channel", attr: logger.Channel("toast"), key: "channel"},
		{name: "reason", attr: logger.Reason("expired"), key: "reason"},
		{name: "op", attr: logger.Op("send"), key: "op"},
		{name: "duration", attr: logger.Duration(time.Second), key: "duration"},
		{name: "count", attr: logger.Count(3), key: "count"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.key, tt.attr.Key)
		})
	}
}

func TestAttrs_NilAndZeroElided(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	assert.True(t, logger.NotificationID("").Equal(slog.Attr{}))
}
