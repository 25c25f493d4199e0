// Package logger builds slog loggers for the date range rule and provides
// attribute constructors that keep key names consistent.
//
// New creates a *slog.Logger configured by Option functions:
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter – output format.
//   - WithLevel / WithLevelName – minimum level.
//   - WithEnvironment – development (text, debug) or staging/production (JSON, info).
//   - WithSettings – applies APP_ENV, LOG_LEVEL and LOG_FORMAT loaded by package config.
//   - WithAttr – static attributes added to every record.
//
// Helpers in attr.go (Error, Field, ValueKind, Instant, Bound, ...) return
// ready-made slog.Attr values. Error and Errors return an empty Attr for nil
// errors, so they can be passed unconditionally:
//
//	log.Warn("bound rejected", logger.Error(err))
//
// # Usage
//
//	settings := config.MustLoad()
//	log := logger.New(logger.WithSettings(settings))
//	v := validator.NewDateRangeValidator(validator.WithLogger(log))
//
// Discard returns a logger that drops everything; it is the validator default.
package logger
