// Package config loads environment-driven configuration structs.
//
// Fields are described with caarlos0/env tags; a .env file in the working
// directory is read once before the first parse, without overriding
// variables already set in the environment.
//
//	type Config struct {
//		Domain string   `env:"LOCALIZATION_DOMAIN"`
//		Locales []string `env:"LOCALIZATION_AVAILABLE_LOCALES" envSeparator:"," envDefault:"en,de"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	ErrNilPointer    = errors.New("config: nil pointer provided to loader")
	ErrParsingConfig = errors.New("config: failed to parse environment variables")
)

var dotenvOnce sync.Once

// Load fills v from environment variables.
func Load[T any](v *T) error {
	dotenvOnce.Do(func() {
		// A missing .env file is fine.
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

// LoadWithPrefix fills v from environment variables whose names start with
// prefix, e.g. "ADMIN_" turns `env:"REDIS_URL"` into ADMIN_REDIS_URL.
func LoadWithPrefix[T any](v *T, prefix string) error {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	if v == nil {
		return ErrNilPointer
	}
	if err := env.ParseWithOptions(v, env.Options{Prefix: prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
