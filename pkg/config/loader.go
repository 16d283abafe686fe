package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load populates the configuration struct from environment variables,
// reading the default .env file first if one exists. Field mapping uses
// caarlos0/env tags:
//
//	type ClientConfig struct {
//	    APIBaseURL string        `env:"HEALTHLENS_API_URL" envDefault:"http://localhost:8000"`
//	    Timeout    time.Duration `env:"HEALTHLENS_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg ClientConfig
//	if err := config.Load(&cfg); err != nil { ... }
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional; a missing one is not an error.
		_ = godotenv.Load()
	})

	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Use it for configuration
// the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
