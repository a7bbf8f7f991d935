package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Validator is implemented by config structs that check their own values
// after parsing.
type Validator interface {
	Validate() error
}

var (
	cacheMu sync.Mutex
	cache   = map[reflect.Type]any{}

	dotenvOnce sync.Once
)

// Load fills v from the environment using `env` struct tags. A .env file
// in the working directory is read once if present; real environment
// variables win over it. The parsed value is cached per type, so later
// calls for the same type return the first result.
//
// If *T implements Validator, Validate runs before the value is cached.
//
//	type StorageConfig struct {
//		Dir string `env:"APK_DIR" envDefault:"./apks"`
//	}
//
//	var cfg StorageConfig
//	if err := config.Load(&cfg); err != nil { ... }
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvOnce.Do(func() { _ = godotenv.Load() })

	key := reflect.TypeFor[T]()

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	if val, ok := any(&parsed).(Validator); ok {
		if err := val.Validate(); err != nil {
			return errors.Join(ErrInvalidConfig, err)
		}
	}

	cache[key] = parsed
	*v = parsed
	return nil
}

// MustLoad is Load that panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// LoadEnv reads the given dotenv files into the process environment.
// Later files override earlier ones; variables already set in the real
// environment are never replaced. With no paths it reads ./.env.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	merged := map[string]string{}
	for _, p := range paths {
		values, err := godotenv.Read(p)
		if err != nil {
			return errors.Join(ErrEnvFile, fmt.Errorf("%s: %w", p, err))
		}
		for k, val := range values {
			merged[k] = val
		}
	}
	for k, val := range merged {
		if _, set := os.LookupEnv(k); set {
			continue
		}
		if err := os.Setenv(k, val); err != nil {
			return errors.Join(ErrEnvFile, err)
		}
	}
	return nil
}

// Reset drops every cached config so the next Load parses again.
func Reset() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	clear(cache)
}
