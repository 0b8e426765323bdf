// Package dates normalises calendar date inputs into the canonical
// YYYY-MM-DD textual form used by the picker attribute contract. Display
// formatting is a client-side concern; everything serialised server-side goes
// through this package first.
package dates

import (
	"strings"
	"time"
)

// Layout is the canonical serialisation format. All accepted inputs are
// reduced to this layout regardless of the display format configured on the
// widget.
const Layout = "2006-01-02"

// Value is a calendar date stripped of time-of-day and zone information.
type Value struct {
	year  int
	month time.Month
	day   int
}

// FromTime builds a Value from a native time, discarding everything below
// day granularity.
func FromTime(t time.Time) Value {
	year, month, day := t.Date()
	return Value{year: year, month: month, day: day}
}

// ParseString accepts only the canonical layout.
func ParseString(raw string) (Value, error) {
	trimmed := strings.TrimSpace(raw)
	parsed, err := time.Parse(Layout, trimmed)
	if err != nil {
		return Value{}, newValidationError("", trimmed, ErrMalformedDate)
	}
	return FromTime(parsed), nil
}

// Parse normalises any supported input into a Value. Supported inputs are
// Value, *Value, time.Time, *time.Time and canonical-format strings. Anything
// else fails with a *ValidationError carrying the supplied field name.
func Parse(field string, value any) (Value, error) {
	switch v := value.(type) {
	case Value:
		return v, nil
	case *Value:
		if v == nil {
			return Value{}, newValidationError(field, "", ErrUnsupportedType)
		}
		return *v, nil
	case time.Time:
		return FromTime(v), nil
	case *time.Time:
		if v == nil {
			return Value{}, newValidationError(field, "", ErrUnsupportedType)
		}
		return FromTime(*v), nil
	case string:
		parsed, err := ParseString(v)
		if err != nil {
			return Value{}, newValidationError(field, strings.TrimSpace(v), ErrMalformedDate)
		}
		return parsed, nil
	default:
		return Value{}, newValidationError(field, "", ErrUnsupportedType)
	}
}

// ParseList normalises a heterogeneous list of date inputs. Each entry is
// validated independently; the first failure aborts the list.
func ParseList(field string, values []any) ([]Value, error) {
	if len(values) == 0 {
		return nil, nil
	}
	out := make([]Value, 0, len(values))
	for _, value := range values {
		parsed, err := Parse(field, value)
		if err != nil {
			return nil, err
		}
		out = append(out, parsed)
	}
	return out, nil
}

// IsZero reports whether the value carries no date.
func (v Value) IsZero() bool {
	return v.year == 0 && v.month == 0 && v.day == 0
}

// Time converts the value back to a native time at midnight UTC.
func (v Value) Time() time.Time {
	return time.Date(v.year, v.month, v.day, 0, 0, 0, 0, time.UTC)
}

// String renders the canonical layout. The zero Value renders as the empty
// string so optional parameters serialise to nothing.
func (v Value) String() string {
	if v.IsZero() {
		return ""
	}
	return v.Time().Format(Layout)
}

// Equal compares two values by calendar day.
func (v Value) Equal(other Value) bool {
	return v.year == other.year && v.month == other.month && v.day == other.day
}
