package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load populates the configuration struct from environment variables.
//
// On the first call the default .env file is loaded if present (a missing
// file is not an error), then env.Parse fills the struct from `env` field
// tags with `envDefault` fallbacks.
//
// Example:
//
//	type EngineConfig struct {
//		ProcessInterval time.Duration `env:"NOTIFY_PROCESS_INTERVAL" envDefault:"100ms"`
//		RateLimit       int           `env:"NOTIFY_RATE_LIMIT" envDefault:"10"`
//	}
//
//	var cfg EngineConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Intended for configuration the application cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
