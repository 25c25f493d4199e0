package dateexpr

import "errors"

var (
	// ErrNotADate is returned when the input is neither a relative expression nor a recognizable date.
	ErrNotADate = errors.New("not a date")

	// ErrNilLocation is returned when a nil location is passed to a parser.
	ErrNilLocation = errors.New("nil location")
)
