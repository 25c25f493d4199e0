package validator

import (
	"log/slog"
	"math"
	"time"

	"github.com/dmitrymomot/dateextra/pkg/dateexpr"
	"github.com/dmitrymomot/dateextra/pkg/logger"
)

// DateRangeValidator checks candidate values against a DateRange. It holds no
// per-call state and may be shared between goroutines.
type DateRangeValidator struct {
	now      func() time.Time
	location *time.Location
	logger   *slog.Logger
}

// ValidatorOption configures a DateRangeValidator.
type ValidatorOption func(*DateRangeValidator)

// WithClock sets the time source used to resolve relative bounds and
// relative date strings. Nil is ignored.
func WithClock(now func() time.Time) ValidatorOption {
	return func(v *DateRangeValidator) {
		if now != nil {
			v.now = now
		}
	}
}

// WithDefaultLocation sets the zone used when a constraint has no timezone.
// Defaults to time.Local. Nil is ignored.
func WithDefaultLocation(loc *time.Location) ValidatorOption {
	return func(v *DateRangeValidator) {
		if loc != nil {
			v.location = loc
		}
	}
}

// WithLogger sets the logger for diagnostics. Nil is ignored.
func WithLogger(l *slog.Logger) ValidatorOption {
	return func(v *DateRangeValidator) {
		if l != nil {
			v.logger = l
		}
	}
}

func NewDateRangeValidator(opts ...ValidatorOption) *DateRangeValidator {
	v := &DateRangeValidator{
		now:      time.Now,
		location: time.Local,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.logger = v.logger.With(logger.Component("date_range"))
	return v
}

// Validate reports at most one violation for value to r.
//
// Empty values (nil, "") pass. A string that is not a date yields the invalid
// message. Otherwise the value is compared with the bounds, resolved afresh on
// every call: the min message wins over the max message, and a bound at or
// before the Unix epoch is treated as absent.
//
// The returned error is non-nil only for an unsupported value shape
// (ErrUnexpectedType) or an unresolvable bound (ErrInvalidBound).
func (v *DateRangeValidator) Validate(value any, c *DateRange, r Reporter) error {
	if c == nil {
		return ErrNilConstraint
	}
	if r == nil {
		return ErrNilReporter
	}

	cand, err := Classify(value)
	if err != nil {
		v.logger.Warn("unsupported date value", logger.Error(err))
		return err
	}
	if cand.Kind == KindEmpty {
		return nil
	}

	loc := c.EffectiveLocation(v.location)
	now := v.now()

	instant, ok := v.instant(cand, c, loc, now)
	if !ok {
		v.report(r, Violation{Message: c.InvalidMessage(), TranslationKey: KeyDateInvalid})
		return nil
	}

	minT, err := c.ResolveMin(now, loc)
	if err != nil {
		v.logger.Warn("cannot resolve bound", logger.Expression(c.Min()), logger.Error(err))
		return err
	}
	maxT, err := c.ResolveMax(now, loc)
	if err != nil {
		v.logger.Warn("cannot resolve bound", logger.Expression(c.Max()), logger.Error(err))
		return err
	}

	v.logger.Debug("date value resolved",
		logger.ValueKind(cand.Kind.String()),
		logger.Instant(instant),
		logger.Bound("min", minT),
		logger.Bound("max", maxT),
	)

	switch {
	case isBound(minT) && minT.After(instant):
		v.report(r, Violation{
			Message:        c.MinMessage(),
			TranslationKey: KeyDateMin,
			Params:         placeholders(c, loc, instant, minT, maxT),
		})
	case isBound(maxT) && instant.After(maxT):
		v.report(r, Violation{
			Message:        c.MaxMessage(),
			TranslationKey: KeyDateMax,
			Params:         placeholders(c, loc, instant, minT, maxT),
		})
	}

	return nil
}

// Rule wraps Validate for use with Apply.
func (v *DateRangeValidator) Rule(field string, value any, c *DateRange) Rule {
	return Rule{
		Field: field,
		Validate: func(r Reporter) error {
			return v.Validate(value, c, r)
		},
	}
}

// DateInRange builds a Rule checking value against c with a validator
// configured by opts.
func DateInRange(field string, value any, c *DateRange, opts ...ValidatorOption) Rule {
	return NewDateRangeValidator(opts...).Rule(field, value, c)
}

// instant reduces a classified value to an absolute time. It returns false
// when the value is not a date.
func (v *DateRangeValidator) instant(cand Candidate, c *DateRange, loc *time.Location, now time.Time) (time.Time, bool) {
	switch cand.Kind {
	case KindDateObject:
		return cand.Time, true
	case KindParts:
		return partsTime(cand.Parts, c.DefaultParts(), loc)
	case KindNumeric:
		if math.IsNaN(cand.Number) || math.IsInf(cand.Number, 0) {
			return time.Time{}, false
		}
		return epochTime(cand.Number), true
	case KindDateString:
		t, err := dateexpr.Parse(cand.Text, loc, now)
		if err != nil {
			v.logger.Debug("date string rejected", logger.Error(err))
			return time.Time{}, false
		}
		return t, true
	default:
		return time.Time{}, false
	}
}

func (v *DateRangeValidator) report(r Reporter, vi Violation) {
	v.logger.Debug("date violation", logger.TranslationKey(vi.TranslationKey))
	r.AddViolation(vi)
}

var epoch = time.Unix(0, 0)

// isBound treats non-positive resolved bounds as unset.
func isBound(t time.Time) bool {
	return t.After(epoch)
}

func placeholders(c *DateRange, loc *time.Location, value, minT, maxT time.Time) map[string]string {
	return map[string]string{
		PlaceholderValue: c.FormatTime(value, loc),
		PlaceholderMin:   c.FormatTime(minT, loc),
		PlaceholderMax:   c.FormatTime(maxT, loc),
	}
}
