// Package dates provides date and time formatting and calendar arithmetic
// for transaction display values.
package dates

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/locales/en"
)

// ErrInvalidInput is returned when a value cannot be interpreted as a date.
var ErrInvalidInput = errors.New("invalid date input")

// Format selects the output layout for FormatDate.
type Format string

const (
	// FormatISO renders a zero-padded year-month-day, e.g. "2023-05-15".
	// It is the default layout.
	FormatISO Format = "YYYY-MM-DD"
	// FormatDayMonthYear renders e.g. "15 May 2023".
	FormatDayMonthYear Format = "DD MMM YYYY"
	// FormatMonthDayYear renders e.g. "May 15 2023".
	FormatMonthDayYear Format = "MMM DD YYYY"
)

// Hints tunes how individual fields are represented before the layout is
// applied. The ISO layout always uses a numeric month.
type Hints struct {
	// MonthNumeric renders the month as a zero-padded number instead of
	// the abbreviated English name in the name-bearing layouts.
	MonthNumeric bool
}

// Months are always rendered in English regardless of the caller's locale.
var english = en.New()

// stringLayouts lists the accepted layouts for string inputs.
var stringLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Normalize converts a date-like value into a UTC time.Time. Accepted inputs
// are time.Time values, strings in common layouts, and numeric timestamps:
// seconds since epoch when unixSeconds is set, milliseconds otherwise. Any
// other input is rejected with ErrInvalidInput.
func Normalize(input any, unixSeconds bool) (time.Time, error) {
	switch v := input.(type) {
	case time.Time:
		return v.UTC(), nil
	case string:
		for _, layout := range stringLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t.UTC(), nil
			}
		}
		return time.Time{}, fmt.Errorf("%w: unparseable date string %q", ErrInvalidInput, v)
	case int:
		return fromTimestamp(int64(v), unixSeconds), nil
	case int64:
		return fromTimestamp(v, unixSeconds), nil
	case float64:
		return fromTimestamp(int64(v), unixSeconds), nil
	default:
		return time.Time{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidInput, input)
	}
}

func fromTimestamp(v int64, unixSeconds bool) time.Time {
	if unixSeconds {
		v *= 1000
	}
	return time.UnixMilli(v).UTC()
}

// FormatDate renders a date-like value in the requested layout. The
// day/month/year triple is computed once and the layout only rearranges it.
func FormatDate(input any, hints Hints, format Format, unixSeconds bool) (string, error) {
	t, err := Normalize(input, unixSeconds)
	if err != nil {
		return "", err
	}

	day, month, year := t.Day(), t.Month(), t.Year()
	switch format {
	case FormatDayMonthYear:
		return fmt.Sprintf("%02d %s %d", day, monthField(month, hints), year), nil
	case FormatMonthDayYear:
		return fmt.Sprintf("%s %02d %d", monthField(month, hints), day, year), nil
	default:
		return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day), nil
	}
}

// monthField renders the month per hints. Abbreviations are clamped to three
// letters so four-letter forms like "Sept" never leak into the output.
func monthField(month time.Month, hints Hints) string {
	if hints.MonthNumeric {
		return fmt.Sprintf("%02d", int(month))
	}
	abbreviated := english.MonthAbbreviated(month)
	if len(abbreviated) > 3 {
		abbreviated = abbreviated[:3]
	}
	return abbreviated
}

// FormatTime renders the UTC wall-clock time of a date-like value as
// "HH:mm:ss GMT".
func FormatTime(input any, unixSeconds bool) (string, error) {
	t, err := Normalize(input, unixSeconds)
	if err != nil {
		return "", err
	}
	return t.Format("15:04:05") + " GMT", nil
}
