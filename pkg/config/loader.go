package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings holds process-wide defaults for the date range rule and its logger.
// Empty rule fields mean "keep the built-in default".
type Settings struct {
	// Min and Max are bound expressions, absolute ("2012-09-01") or relative ("-1 year").
	Min string `env:"DATE_RANGE_MIN"`
	Max string `env:"DATE_RANGE_MAX"`

	// Timezone is an IANA zone name used when a constraint sets none.
	Timezone string `env:"DATE_RANGE_TIMEZONE"`

	// Format is a Go reference layout; empty selects locale formatting.
	Format    string `env:"DATE_RANGE_FORMAT"`
	Locale    string `env:"DATE_RANGE_LOCALE"`
	DateStyle string `env:"DATE_RANGE_DATE_STYLE"`
	TimeStyle string `env:"DATE_RANGE_TIME_STYLE"`

	AppEnv    string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT"`
}

var (
	mu     sync.RWMutex
	cached *Settings

	defaultEnvLoaded sync.Once
)

// LoadEnv loads .env files into the process environment. Without arguments it
// loads ./.env and keeps variables that are already set. Explicit paths are
// applied in order and override existing variables, so later files win.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if err := godotenv.Load(); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		return nil
	}
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}

// Load parses Settings from the environment once per process and returns the
// cached copy afterwards. The default .env file is read on first use if present.
func Load() (Settings, error) {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})

	mu.RLock()
	if cached != nil {
		s := *cached
		mu.RUnlock()
		return s, nil
	}
	mu.RUnlock()

	return ForceReload()
}

// MustLoad works like Load but panics if the environment cannot be parsed.
func MustLoad() Settings {
	s, err := Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
	return s
}

// ForceReload parses the environment again and replaces the cached Settings.
func ForceReload() (Settings, error) {
	s, err := env.ParseAs[Settings]()
	if err != nil {
		return Settings{}, errors.Join(ErrParsingConfig, err)
	}

	mu.Lock()
	cached = &s
	mu.Unlock()

	return s, nil
}

// ResetCache drops the cached Settings. Intended for tests.
func ResetCache() {
	mu.Lock()
	cached = nil
	mu.Unlock()
}
