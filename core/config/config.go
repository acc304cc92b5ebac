package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	loadEnvOnce sync.Once

	// cache stores one loaded value per configuration type.
	cache sync.Map // reflect.Type -> any
)

// Load populates cfg from environment variables and caches the result per
// configuration type: every later Load with the same type returns the
// cached value. A .env file in the working directory is applied once,
// before the first parse, and never overrides variables already set in
// the environment.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	loadEnvOnce.Do(func() {
		// Missing .env is the normal case outside local development.
		_ = godotenv.Load()
	})

	typ := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return wrapParseError(typ, err)
	}

	actual, _ := cache.LoadOrStore(typ, *cfg)
	*cfg = actual.(T)
	return nil
}

// MustLoad is Load, panicking on failure. Intended for application
// startup where a broken environment should stop the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// wrapParseError surfaces missing required variables as typed
// MissingKeyError values so callers can report the exact key path and
// expected type instead of a flattened message.
func wrapParseError(typ reflect.Type, err error) error {
	var agg env.AggregateError
	if !errors.As(err, &agg) {
		return fmt.Errorf("config: failed to parse %s: %w", typ, err)
	}

	wrapped := make([]error, 0, len(agg.Errors))
	for _, e := range agg.Errors {
		var notSet env.VarIsNotSetError
		if errors.As(e, &notSet) {
			wrapped = append(wrapped, MissingKeyError{Key: notSet.Key, Type: typ})
			continue
		}
		wrapped = append(wrapped, e)
	}
	return fmt.Errorf("config: failed to parse %s: %w", typ, errors.Join(wrapped...))
}
