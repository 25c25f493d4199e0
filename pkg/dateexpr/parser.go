package dateexpr

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// layouts are tried in order before falling back to dateparse.
// Day-first dashed and dotted forms and month-first slashed forms follow the
// usual European and US conventions respectively.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC1123,
	time.RFC1123Z,
	time.RFC850,
	time.RFC822,
	time.RFC822Z,
	time.ANSIC,
	time.UnixDate,
	"2-1-2006 15:04:05",
	"2-1-2006 15:04",
	"2-1-2006",
	"2.1.2006 15:04:05",
	"2.1.2006",
	"1/2/2006 15:04:05",
	"1/2/2006",
	"Jan 2, 2006 3:04:05 PM",
	"Jan 2, 2006 3:04 PM",
	"Jan 2, 2006",
	"January 2, 2006 3:04 PM",
	"January 2, 2006",
	"Monday, January 2, 2006",
	"2 Jan 2006 15:04:05",
	"2 Jan 2006 15:04",
	"2 Jan 2006",
	"2 January 2006",
}

var words = regexp.MustCompile(`[A-Za-z]+`)

// knownWords are the lowercase words a date string may contain.
var knownWords = func() map[string]struct{} {
	m := make(map[string]struct{})
	for i := time.January; i <= time.December; i++ {
		name := strings.ToLower(i.String())
		m[name] = struct{}{}
		m[name[:3]] = struct{}{}
	}
	for i := time.Sunday; i <= time.Saturday; i++ {
		name := strings.ToLower(i.String())
		m[name] = struct{}{}
		m[name[:3]] = struct{}{}
	}
	for _, w := range []string{"sept", "am", "pm", "t", "z", "utc", "gmt", "st", "nd", "rd", "th", "at", "of"} {
		m[w] = struct{}{}
	}
	return m
}()

// Parse resolves s to an instant. Relative expressions are evaluated against
// now in loc; absolute dates without an explicit offset are read as wall-clock
// time in loc. Errors wrap ErrNotADate.
func Parse(s string, loc *time.Location, now time.Time) (time.Time, error) {
	if loc == nil {
		return time.Time{}, ErrNilLocation
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrNotADate)
	}

	if t, ok := ParseRelative(s, now.In(loc)); ok {
		return t, nil
	}

	return ParseAbsolute(s, loc)
}

// ParseAbsolute parses a calendar date, optionally with time and offset.
// Out-of-range fields such as month 13 or April 32 are rejected, as is any
// string containing a word that cannot be part of a date.
func ParseAbsolute(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		return time.Time{}, ErrNilLocation
	}

	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}

	if w, ok := unknownWord(s); ok {
		return time.Time{}, fmt.Errorf("%w: %q contains unknown word %q", ErrNotADate, s, w)
	}

	t, err := fallback(s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrNotADate, s, err)
	}
	return t, nil
}

// fallback hands s to dateparse, which panics on a few malformed inputs.
func fallback(s string, loc *time.Location) (t time.Time, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("dateparse: %v", r)
		}
	}()
	return dateparse.ParseIn(s, loc)
}

// unknownWord reports the first word in s that is neither a month, a weekday,
// a meridiem, an ordinal suffix nor an upper-case zone abbreviation.
func unknownWord(s string) (string, bool) {
	for _, w := range words.FindAllString(s, -1) {
		if _, ok := knownWords[strings.ToLower(w)]; ok {
			continue
		}
		if len(w) >= 2 && len(w) <= 5 && strings.ToUpper(w) == w {
			continue
		}
		return w, true
	}
	return "", false
}
