package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records the validated field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// ValueKind records the classified shape of a validated value under "value_kind".
func ValueKind(kind string) slog.Attr {
	return slog.String("value_kind", kind)
}

// Instant records an absolute time in RFC 3339 UTC under the key "instant".
func Instant(t time.Time) slog.Attr {
	return slog.String("instant", t.UTC().Format(time.RFC3339Nano))
}

// Bound records a resolved min or max bound under "min" or "max".
func Bound(name string, t time.Time) slog.Attr {
	return slog.String(name, t.UTC().Format(time.RFC3339))
}

// Expression records a raw bound or date expression under "expression".
func Expression(expr string) slog.Attr {
	return slog.String("expression", expr)
}

// TranslationKey records a violation translation key under "translation_key".
func TranslationKey(key string) slog.Attr {
	return slog.String("translation_key", key)
}
