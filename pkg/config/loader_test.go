package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/config"
)

type testConfig struct {
	Name     string        `env:"CFGTEST_NAME" envDefault:"default-name"`
	Limit    int           `env:"CFGTEST_LIMIT" envDefault:"10"`
	Interval time.Duration `env:"CFGTEST_INTERVAL" envDefault:"100ms"`
	Enabled  bool          `env:"CFGTEST_ENABLED" envDefault:"true"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "default-name", cfg.Name)
	assert.Equal(t, 10, cfg.Limit)
	assert.Equal(t, 100*time.Millisecond, cfg.Interval)
	assert.True(t, cfg.Enabled)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CFGTEST_NAME", "from-env")
	t.Setenv("CFGTEST_LIMIT", "42")
	t.Setenv("CFGTEST_INTERVAL", "5s")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "from-env", cfg.Name)
	assert.Equal(t, 42, cfg.Limit)
	assert.Equal(t, 5*time.Second, cfg.Interval)
}

func TestLoad_ParseError(t *testing.T) {
	t.Setenv("CFGTEST_LIMIT", "not-a-number")

	var cfg testConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	t.Parallel()

	err := config.Load[testConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	t.Setenv("CFGTEST_LIMIT", "boom")

	var cfg testConfig
	assert.Panics(t, func() {
		config.MustLoad(&cfg)
	})
}
