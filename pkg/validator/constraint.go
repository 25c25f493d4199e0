package validator

import (
	"errors"
	"fmt"
	"maps"
	"time"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/dateextra/pkg/config"
	"github.com/dmitrymomot/dateextra/pkg/dateexpr"
)

// Default bounds are the limits of a signed 32-bit Unix timestamp.
const (
	DefaultMin = "1901-12-13T20:45:54Z"
	DefaultMax = "2038-01-19T03:14:07Z"
)

const (
	DefaultMinMessage     = "You cannot choose a date before {{ min }}."
	DefaultMaxMessage     = "You cannot choose a date after {{ max }}."
	DefaultInvalidMessage = "The date is invalid"
	DefaultLocale         = "en-US"
)

// Translation keys attached to violations.
const (
	KeyDateInvalid = "validation.date_invalid"
	KeyDateMin     = "validation.date_min"
	KeyDateMax     = "validation.date_max"
)

// Part names accepted in a parts record.
const (
	PartYear   = "year"
	PartMonth  = "month"
	PartDay    = "day"
	PartHour   = "hour"
	PartMinute = "minute"
	PartSecond = "second"
)

// Parts is a structured calendar date. Missing keys are filled from the
// constraint defaults; out-of-range values are normalized the way time.Date does.
type Parts map[string]int

// DefaultParts returns the zero-filled parts used when a record omits a field.
func DefaultParts() Parts {
	return Parts{PartYear: 0, PartMonth: 0, PartDay: 0, PartHour: 0, PartMinute: 0, PartSecond: 0}
}

// DateRange configures the date range rule. It is immutable once built by
// NewDateRange and safe to share between goroutines.
type DateRange struct {
	min, max       string
	minMessage     string
	maxMessage     string
	invalidMessage string
	format         string
	dateStyle      Style
	timeStyle      Style
	locale         string
	patterns       localePatterns
	timezone       string
	location       *time.Location
	defaultParts   Parts

	errs []error
}

// Option configures a DateRange.
type Option func(*DateRange)

// WithMin sets the lower bound. Absolute dates and relative expressions such
// as "-1 year" are accepted; relative ones are resolved on every validation.
func WithMin(expr string) Option {
	return func(d *DateRange) { d.min = expr }
}

// WithMax sets the upper bound. See WithMin.
func WithMax(expr string) Option {
	return func(d *DateRange) { d.max = expr }
}

func WithMinMessage(msg string) Option {
	return func(d *DateRange) { d.minMessage = msg }
}

func WithMaxMessage(msg string) Option {
	return func(d *DateRange) { d.maxMessage = msg }
}

func WithInvalidMessage(msg string) Option {
	return func(d *DateRange) { d.invalidMessage = msg }
}

// WithFormat sets a Go reference layout for rendering placeholders.
// An empty layout selects locale formatting.
func WithFormat(layout string) Option {
	return func(d *DateRange) { d.format = layout }
}

func WithDateStyle(s Style) Option {
	return func(d *DateRange) { d.dateStyle = s }
}

func WithTimeStyle(s Style) Option {
	return func(d *DateRange) { d.timeStyle = s }
}

// WithLocale sets the BCP 47 tag used for locale formatting.
func WithLocale(tag string) Option {
	return func(d *DateRange) { d.locale = tag }
}

// WithTimezone sets the IANA zone used to read date strings and parts and to
// render placeholders. Without it the validator's default location applies.
func WithTimezone(name string) Option {
	return func(d *DateRange) { d.timezone = name }
}

// WithDefaultParts replaces the defaults merged into parts records.
func WithDefaultParts(p Parts) Option {
	return func(d *DateRange) {
		d.defaultParts = DefaultParts()
		maps.Copy(d.defaultParts, p)
	}
}

// WithSettings applies the non-empty values of environment-driven settings.
// Options given after it take precedence.
func WithSettings(s config.Settings) Option {
	return func(d *DateRange) {
		if s.Min != "" {
			d.min = s.Min
		}
		if s.Max != "" {
			d.max = s.Max
		}
		if s.Format != "" {
			d.format = s.Format
		}
		if s.Locale != "" {
			d.locale = s.Locale
		}
		if s.Timezone != "" {
			d.timezone = s.Timezone
		}
		if s.DateStyle != "" {
			st, err := ParseStyle(s.DateStyle)
			if err != nil {
				d.errs = append(d.errs, err)
			}
			d.dateStyle = st
		}
		if s.TimeStyle != "" {
			st, err := ParseStyle(s.TimeStyle)
			if err != nil {
				d.errs = append(d.errs, err)
			}
			d.timeStyle = st
		}
	}
}

// NewDateRange builds a constraint. The timezone, locale and styles are
// checked here; bound expressions are only parsed when a value is validated.
func NewDateRange(opts ...Option) (*DateRange, error) {
	d := &DateRange{
		min:            DefaultMin,
		max:            DefaultMax,
		minMessage:     DefaultMinMessage,
		maxMessage:     DefaultMaxMessage,
		invalidMessage: DefaultInvalidMessage,
		dateStyle:      StyleMedium,
		timeStyle:      StyleShort,
		locale:         DefaultLocale,
		defaultParts:   DefaultParts(),
	}
	for _, opt := range opts {
		opt(d)
	}

	if !d.dateStyle.valid() {
		d.errs = append(d.errs, fmt.Errorf("%w: date style %d", ErrInvalidStyle, d.dateStyle))
	}
	if !d.timeStyle.valid() {
		d.errs = append(d.errs, fmt.Errorf("%w: time style %d", ErrInvalidStyle, d.timeStyle))
	}

	if d.timezone != "" {
		loc, err := time.LoadLocation(d.timezone)
		if err != nil {
			d.errs = append(d.errs, fmt.Errorf("%w: %q: %v", ErrInvalidTimezone, d.timezone, err))
		}
		d.location = loc
	}

	tag, err := language.Parse(d.locale)
	if err != nil {
		d.errs = append(d.errs, fmt.Errorf("%w: %q: %v", ErrInvalidLocale, d.locale, err))
	}
	d.patterns = matchLocale(tag)

	if err := errors.Join(d.errs...); err != nil {
		return nil, err
	}
	d.errs = nil

	return d, nil
}

// MustNewDateRange is like NewDateRange but panics on error.
func MustNewDateRange(opts ...Option) *DateRange {
	d, err := NewDateRange(opts...)
	if err != nil {
		panic(fmt.Sprintf("invalid date range constraint: %v", err))
	}
	return d
}

func (d *DateRange) Min() string            { return d.min }
func (d *DateRange) Max() string            { return d.max }
func (d *DateRange) MinMessage() string     { return d.minMessage }
func (d *DateRange) MaxMessage() string     { return d.maxMessage }
func (d *DateRange) InvalidMessage() string { return d.invalidMessage }
func (d *DateRange) Format() string         { return d.format }
func (d *DateRange) DateStyle() Style       { return d.dateStyle }
func (d *DateRange) TimeStyle() Style       { return d.timeStyle }
func (d *DateRange) Locale() string         { return d.locale }
func (d *DateRange) Timezone() string       { return d.timezone }

// DefaultParts returns a copy of the defaults merged into parts records.
func (d *DateRange) DefaultParts() Parts {
	return maps.Clone(d.defaultParts)
}

// ResolveMin resolves the lower bound against now in loc.
func (d *DateRange) ResolveMin(now time.Time, loc *time.Location) (time.Time, error) {
	return resolveBound("min", d.min, now, loc)
}

// ResolveMax resolves the upper bound against now in loc.
func (d *DateRange) ResolveMax(now time.Time, loc *time.Location) (time.Time, error) {
	return resolveBound("max", d.max, now, loc)
}

func resolveBound(name, expr string, now time.Time, loc *time.Location) (time.Time, error) {
	t, err := dateexpr.Parse(expr, loc, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q: %v", ErrInvalidBound, name, expr, err)
	}
	return t, nil
}

// EffectiveLocation returns the configured zone, or fallback when none is set.
func (d *DateRange) EffectiveLocation(fallback *time.Location) *time.Location {
	if d.location != nil {
		return d.location
	}
	if fallback == nil {
		return time.Local
	}
	return fallback
}

// UsesLocaleFormatting reports whether placeholders are rendered with the
// locale date and time styles instead of an explicit layout.
func (d *DateRange) UsesLocaleFormatting() bool {
	return d.format == ""
}

// FormatTime renders t in loc following the constraint's formatting rules.
func (d *DateRange) FormatTime(t time.Time, loc *time.Location) string {
	t = t.In(d.EffectiveLocation(loc))
	if !d.UsesLocaleFormatting() {
		return t.Format(d.format)
	}
	return d.patterns.format(t, d.dateStyle, d.timeStyle)
}
