package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the shape of a candidate value.
type Kind int

const (
	KindEmpty Kind = iota
	KindDateObject
	KindParts
	KindNumeric
	KindDateString
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindDateObject:
		return "date_object"
	case KindParts:
		return "parts"
	case KindNumeric:
		return "numeric"
	case KindDateString:
		return "date_string"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

const expectedTypes = "date string, time.Time, parts record or Unix timestamp"

// Candidate is a classified value. Only the field matching Kind is set.
type Candidate struct {
	Kind   Kind
	Time   time.Time
	Parts  map[string]any
	// Number holds Unix seconds. Integers beyond 2^53 lose precision here,
	// which only affects instants far outside any real date range.
	Number float64
	Text   string
}

// Classify sorts value into one of the supported shapes. Values that fit none
// of them and have no String method yield an *UnexpectedTypeError.
func Classify(value any) (Candidate, error) {
	switch v := value.(type) {
	case nil:
		return Candidate{Kind: KindEmpty}, nil
	case time.Time:
		return Candidate{Kind: KindDateObject, Time: v}, nil
	case *time.Time:
		if v == nil {
			return Candidate{Kind: KindEmpty}, nil
		}
		return Candidate{Kind: KindDateObject, Time: *v}, nil
	case json.Number:
		return classifyString(v.String(), true), nil
	case []byte:
		return classifyString(string(v), true), nil
	case Parts:
		return Candidate{Kind: KindParts, Parts: toAnyMap(v)}, nil
	case map[string]int:
		return Candidate{Kind: KindParts, Parts: toAnyMap(v)}, nil
	case map[string]string:
		return Candidate{Kind: KindParts, Parts: toAnyMap(v)}, nil
	case map[string]any:
		return Candidate{Kind: KindParts, Parts: toAnyMap(v)}, nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return Candidate{Kind: KindEmpty}, nil
		}
	case reflect.String:
		return classifyString(rv.String(), true), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Candidate{Kind: KindNumeric, Number: float64(rv.Int())}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Candidate{Kind: KindNumeric, Number: float64(rv.Uint())}, nil
	case reflect.Float32, reflect.Float64:
		return Candidate{Kind: KindNumeric, Number: rv.Float()}, nil
	}

	if s, ok := value.(fmt.Stringer); ok {
		return classifyString(s.String(), false), nil
	}

	return Candidate{}, &UnexpectedTypeError{Value: value, Expected: expectedTypes}
}

// classifyString treats numeric text as a Unix timestamp and anything else as
// a date string. The empty string is empty only when allowEmpty is set.
func classifyString(s string, allowEmpty bool) Candidate {
	if s == "" && allowEmpty {
		return Candidate{Kind: KindEmpty}
	}
	if f, ok := parseNumeric(s); ok {
		return Candidate{Kind: KindNumeric, Number: f}
	}
	return Candidate{Kind: KindDateString, Text: s}
}

func parseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "xX_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func toAnyMap[V any](m map[string]V) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// maxEpochSeconds bounds numeric timestamps. Larger magnitudes are clamped so
// the int64 conversion cannot overflow and ordering against bounds holds.
const maxEpochSeconds = 1 << 53

// epochTime converts fractional Unix seconds to a time.
func epochTime(sec float64) time.Time {
	switch {
	case sec >= maxEpochSeconds:
		return time.Unix(maxEpochSeconds, 0)
	case sec <= -maxEpochSeconds:
		return time.Unix(-maxEpochSeconds, 0)
	}
	whole, frac := math.Modf(sec)
	return time.Unix(int64(whole), int64(frac*1e9))
}

// partsTime merges record over defaults and builds the wall-clock time in loc.
// It fails when a supplied part is not an integer.
func partsTime(record map[string]any, defaults Parts, loc *time.Location) (time.Time, bool) {
	merged := DefaultParts()
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range record {
		n, ok := partInt(v)
		if !ok {
			if _, known := merged[k]; known {
				return time.Time{}, false
			}
			continue
		}
		merged[k] = n
	}

	return time.Date(
		merged[PartYear],
		time.Month(merged[PartMonth]),
		merged[PartDay],
		merged[PartHour],
		merged[PartMinute],
		merged[PartSecond],
		0,
		loc,
	), true
}

func partInt(v any) (int, bool) {
	switch x := v.(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		return n, err == nil
	case json.Number:
		n, err := strconv.Atoi(x.String())
		return n, err == nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return int(f), true
	}
	return 0, false
}
