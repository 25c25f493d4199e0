package dateexpr

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// step is one unit of relative movement.
type step struct {
	years, months, days int
	dur                 time.Duration
}

func (s step) times(t time.Time, n int) time.Time {
	return t.AddDate(s.years*n, s.months*n, s.days*n).Add(s.dur * time.Duration(n))
}

var units = map[string]step{
	"sec":        {dur: time.Second},
	"secs":       {dur: time.Second},
	"second":     {dur: time.Second},
	"seconds":    {dur: time.Second},
	"min":        {dur: time.Minute},
	"mins":       {dur: time.Minute},
	"minute":     {dur: time.Minute},
	"minutes":    {dur: time.Minute},
	"hour":       {dur: time.Hour},
	"hours":      {dur: time.Hour},
	"day":        {days: 1},
	"days":       {days: 1},
	"week":       {days: 7},
	"weeks":      {days: 7},
	"fortnight":  {days: 14},
	"fortnights": {days: 14},
	"month":      {months: 1},
	"months":     {months: 1},
	"year":       {years: 1},
	"years":      {years: 1},
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"tues":      time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"thur":      time.Thursday,
	"thurs":     time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
}

// clock matches a time of day, "15:04" or "15:04:05".
var clock = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)

// glued matches offsets written without a space, e.g. "+1year".
var glued = regexp.MustCompile(`^([+-]?\d+)([a-z]+)$`)

// ParseRelative resolves a relative expression against now. The result keeps
// the location of now. The boolean is false when s is not a relative expression;
// a bare number is never treated as one.
func ParseRelative(s string, now time.Time) (time.Time, bool) {
	tokens := tokenize(s)
	if len(tokens) == 0 {
		return time.Time{}, false
	}

	t := now
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok {
		case "now":
		case "today", "midnight":
			t = startOfDay(t)
		case "noon":
			t = startOfDay(t).Add(12 * time.Hour)
		case "tomorrow":
			t = startOfDay(t).AddDate(0, 0, 1)
		case "yesterday":
			t = startOfDay(t).AddDate(0, 0, -1)
		case "next", "last", "previous":
			if i+1 >= len(tokens) {
				return time.Time{}, false
			}
			n := 1
			if tok != "next" {
				n = -1
			}
			if d, ok := weekdays[tokens[i+1]]; ok {
				t = shiftToWeekday(t, d, n)
				i++
				continue
			}
			u, ok := units[tokens[i+1]]
			if !ok {
				return time.Time{}, false
			}
			t = u.times(t, n)
			i++
		default:
			if d, ok := weekdays[tok]; ok {
				t = shiftToWeekday(t, d, 0)
				continue
			}
			if m := clock.FindStringSubmatch(tok); m != nil {
				at, ok := atClock(t, m)
				if !ok {
					return time.Time{}, false
				}
				t = at
				continue
			}
			n, err := strconv.Atoi(tok)
			if err != nil || i+1 >= len(tokens) {
				return time.Time{}, false
			}
			u, ok := units[tokens[i+1]]
			if !ok {
				return time.Time{}, false
			}
			i++
			if i+1 < len(tokens) && tokens[i+1] == "ago" {
				n = -n
				i++
			}
			t = u.times(t, n)
		}
	}

	return t, true
}

// tokenize lowercases s and splits it into words and signed integers.
// A lone sign is attached to the number that follows it.
func tokenize(s string) []string {
	fields := strings.Fields(strings.ToLower(s))
	tokens := make([]string, 0, len(fields))
	sign := ""
	for _, f := range fields {
		if f == "+" || f == "-" {
			sign = f
			continue
		}
		if m := glued.FindStringSubmatch(f); m != nil {
			tokens = append(tokens, sign+m[1], m[2])
		} else {
			tokens = append(tokens, sign+f)
		}
		sign = ""
	}
	if sign != "" {
		tokens = append(tokens, sign)
	}
	return tokens
}

// shiftToWeekday moves to midnight of weekday d. With dir 0 today counts,
// otherwise the nearest d strictly after (1) or before (-1) today is taken.
func shiftToWeekday(t time.Time, d time.Weekday, dir int) time.Time {
	t = startOfDay(t)
	switch dir {
	case 0:
		return t.AddDate(0, 0, (int(d)-int(t.Weekday())+7)%7)
	case 1:
		diff := (int(d) - int(t.Weekday()) + 7) % 7
		if diff == 0 {
			diff = 7
		}
		return t.AddDate(0, 0, diff)
	default:
		diff := (int(t.Weekday()) - int(d) + 7) % 7
		if diff == 0 {
			diff = 7
		}
		return t.AddDate(0, 0, -diff)
	}
}

// atClock sets the time of day from a clock match, keeping the date.
func atClock(t time.Time, m []string) (time.Time, bool) {
	h, _ := strconv.Atoi(m[1])
	mi, _ := strconv.Atoi(m[2])
	sec := 0
	if m[3] != "" {
		sec, _ = strconv.Atoi(m[3])
	}
	if h > 23 || mi > 59 || sec > 59 {
		return time.Time{}, false
	}
	return time.Date(t.Year(), t.Month(), t.Day(), h, mi, sec, 0, t.Location()), true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
