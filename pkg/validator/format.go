package validator

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Style is the verbosity of the date or time part in locale formatting.
type Style int

const (
	StyleNone Style = iota
	StyleFull
	StyleLong
	StyleMedium
	StyleShort
)

var styleNames = [...]string{"none", "full", "long", "medium", "short"}

func (s Style) String() string {
	if !s.valid() {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleNames[s]
}

func (s Style) valid() bool {
	return s >= StyleNone && s <= StyleShort
}

// ParseStyle maps a case-insensitive style name to a Style.
func ParseStyle(name string) (Style, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, sn := range styleNames {
		if sn == n {
			return Style(i), nil
		}
	}
	return StyleNone, fmt.Errorf("%w: %q", ErrInvalidStyle, name)
}

// localePatterns holds Go layouts for each date and time style of one locale.
type localePatterns struct {
	date map[Style]string
	time map[Style]string
}

func (p localePatterns) format(t time.Time, dateStyle, timeStyle Style) string {
	var parts []string
	if layout, ok := p.date[dateStyle]; ok {
		parts = append(parts, t.Format(layout))
	}
	if layout, ok := p.time[timeStyle]; ok {
		parts = append(parts, t.Format(layout))
	}
	if len(parts) == 0 {
		return t.Format(time.RFC3339)
	}
	return strings.Join(parts, " ")
}

// supportedLocales is ordered by preference; the first entry is the fallback.
var supportedLocales = []language.Tag{
	language.AmericanEnglish,
	language.BritishEnglish,
}

var localeMatcher = language.NewMatcher(supportedLocales)

var patternsByLocale = []localePatterns{
	{
		date: map[Style]string{
			StyleFull:   "Monday, January 2, 2006",
			StyleLong:   "January 2, 2006",
			StyleMedium: "Jan 2, 2006",
			StyleShort:  "1/2/06",
		},
		time: map[Style]string{
			StyleFull:   "3:04:05 PM MST",
			StyleLong:   "3:04:05 PM MST",
			StyleMedium: "3:04:05 PM",
			StyleShort:  "3:04 PM",
		},
	},
	{
		date: map[Style]string{
			StyleFull:   "Monday, 2 January 2006",
			StyleLong:   "2 January 2006",
			StyleMedium: "2 Jan 2006",
			StyleShort:  "02/01/2006",
		},
		time: map[Style]string{
			StyleFull:   "15:04:05 MST",
			StyleLong:   "15:04:05 MST",
			StyleMedium: "15:04:05",
			StyleShort:  "15:04",
		},
	},
}

func matchLocale(tag language.Tag) localePatterns {
	_, idx, _ := localeMatcher.Match(tag)
	if idx < 0 || idx >= len(patternsByLocale) {
		idx = 0
	}
	return patternsByLocale[idx]
}
