package notify_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/config"
	"github.com/dmitrymomot/notifykit/pkg/notify"
)

func TestConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := notify.DefaultConfig()
	assert.Equal(t, 100*time.Millisecond, cfg.ProcessInterval)
	assert.Equal(t, 5*time.Minute, cfg.SweepInterval)
	assert.Equal(t, 10, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateWindow)
	assert.Equal(t, 100, cfg.MaxStored)
	assert.Equal(t, 64, cfg.EventBuffer)
}

func TestConfig_LoadFromEnv(t *testing.T) {
	t.Setenv("NOTIFY_PROCESS_INTERVAL", "250ms")
	t.Setenv("NOTIFY_RATE_LIMIT", "25")
	t.Setenv("NOTIFY_MAX_STORED", "500")

	var cfg notify.Config
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, 250*time.Millisecond, cfg.ProcessInterval)
	assert.Equal(t, 25, cfg.RateLimit)
	assert.Equal(t, 500, cfg.MaxStored)

	// Unset variables fall back to tag defaults.
	assert.Equal(t, 5*time.Minute, cfg.SweepInterval)
	assert.Equal(t, 64, cfg.EventBuffer)
}
