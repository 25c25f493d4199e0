package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnexpectedType is returned when a value is not a date string, date object, parts record or timestamp.
	ErrUnexpectedType = errors.New("unexpected value type")

	// ErrInvalidBound is returned when a min or max expression cannot be resolved to an instant.
	ErrInvalidBound = errors.New("invalid date bound")

	// ErrInvalidTimezone is returned when the configured timezone is not a known IANA zone.
	ErrInvalidTimezone = errors.New("invalid timezone")

	// ErrInvalidLocale is returned when the configured locale is not a valid BCP 47 tag.
	ErrInvalidLocale = errors.New("invalid locale")

	// ErrInvalidStyle is returned for a date or time style outside the known set.
	ErrInvalidStyle = errors.New("invalid format style")

	// ErrNilConstraint is returned when Validate is called without a constraint.
	ErrNilConstraint = errors.New("nil constraint")

	// ErrNilReporter is returned when Validate is called without a reporter.
	ErrNilReporter = errors.New("nil reporter")
)

// UnexpectedTypeError reports a value whose shape the rule cannot handle.
// It is a caller contract violation, never a validation failure.
type UnexpectedTypeError struct {
	Value    any
	Expected string
}

func (e *UnexpectedTypeError) Error() string {
	return fmt.Sprintf("expected argument of type %q, %T given", e.Expected, e.Value)
}

func (e *UnexpectedTypeError) Unwrap() error {
	return ErrUnexpectedType
}
