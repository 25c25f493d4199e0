// Package dateexpr parses free-form date strings into absolute instants.
//
// Two kinds of input are accepted:
//
//   - Relative expressions evaluated against a caller-supplied "now":
//     "now", "today", "tomorrow", "-1 year", "+2 weeks", "3 days ago",
//     "next month", "yesterday noon", "friday", "next tuesday", "12:00".
//     Weekday forms resolve to midnight; a bare time of day applies to the
//     current date. Tokens may be combined and are applied left to right.
//   - Absolute dates in common layouts (ISO 8601, RFC 3339, RFC 1123, "d-m-Y",
//     "m/d/Y", "Jan 2, 2006", ...). Anything the fixed layout table does not
//     recognize falls through to github.com/araddon/dateparse.
//
// Strings that carry no explicit offset are interpreted in the location passed
// to Parse, so the same text resolves to different instants in different zones.
//
// # Usage
//
//	loc, _ := time.LoadLocation("Europe/London")
//	t, err := dateexpr.Parse("-1 year", loc, time.Now())
//	if errors.Is(err, dateexpr.ErrNotADate) {
//	    // not a date
//	}
//
// The package keeps no state; all functions are safe for concurrent use.
package dateexpr
