package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var dotenvOnce sync.Once

// Load parses environment variables into the provided configuration struct
// based on its `env` field tags. A local .env file, if present, is read once
// per process before the first parse; a missing .env file is not an error.
//
// Example:
//
//	type Config struct {
//		Secret string        `env:"JWT_SECRET,required"`
//		TTL    time.Duration `env:"JWT_TTL" envDefault:"2h"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// a required variable is missing or unparseable
//	}
func Load[T any](v *T) error {
	dotenvOnce.Do(func() {
		// The .env file is a development convenience only.
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

// MustLoad works like Load but panics on failure. Used for configuration the
// process cannot start without, such as the token signing secret.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
