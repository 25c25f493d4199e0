// Package config loads process-wide defaults for the date range rule from
// environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - Loads values from one or multiple `.env` files (fallback to the default
//     `.env` in the current working directory).
//   - Parses the environment into the Settings struct using field tags.
//   - Caches the parsed Settings so the environment is read once per process.
//   - Exposes helpers that panic on failure (`MustLoadEnv`, `MustLoad`).
//
// # Variables
//
//	DATE_RANGE_MIN         lower bound expression ("2012-09-01", "-1 year")
//	DATE_RANGE_MAX         upper bound expression
//	DATE_RANGE_TIMEZONE    IANA zone name, e.g. "Europe/London"
//	DATE_RANGE_FORMAT      Go reference layout, e.g. "02-01-2006 15:04:05"
//	DATE_RANGE_LOCALE      BCP 47 tag, e.g. "en-GB"
//	DATE_RANGE_DATE_STYLE  none | full | long | medium | short
//	DATE_RANGE_TIME_STYLE  none | full | long | medium | short
//	APP_ENV                development | staging | production
//	LOG_LEVEL              debug | info | warn | error
//	LOG_FORMAT             json | text
//
// # Usage
//
//	if err := config.LoadEnv("./config/.env"); err != nil {
//	    log.Fatalf("loading env: %v", err)
//	}
//
//	settings, err := config.Load()
//	if err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
//	rng, err := validator.NewDateRange(validator.WithSettings(settings))
//
// # Testing Helpers
//
// Use `ResetCache()` to clear the cache between tests or `ForceReload()` to
// re-read the environment after it changes.
package config
