package types

import (
	"math"
	"time"

	"github.com/theory/juliandate/jd/calendar"
)

// secondsPerOffsetUnit is the length of one 15-minute offset unit in
// seconds.
const secondsPerOffsetUnit = minutesPerOffsetUnit * 60

// Parse parses src into a Date or DateTime by iterating through the
// canonical renderings and a handful of ISO 8601 layouts: date-only values
// as "2 Jan 2006" or "2006-01-02", date-times as
// "2 Jan 2006 15:04:05.00 (-0700)" and friends. Returns false if no layout
// matches.
func Parse(src string) (Value, bool) {
	// Date-only first.
	if date, ok := parseDate(src); ok {
		return date, true
	}
	if value, ok := parseDateTime(src); ok {
		return value, true
	}

	// Not found.
	return nil, false
}

// parseDate parses src as a date-only value.
func parseDate(src string) (Date, bool) {
	for _, format := range []string{dateFormat, "2006-01-02"} {
		value, err := time.Parse(format, src)
		if err != nil {
			continue
		}
		date, err := NewDate(value.Year(), int(value.Month()), value.Day())
		if err != nil {
			continue
		}
		return date, true
	}
	return Date{}, false
}

// parseDateTime parses src as a date-time value, with and without a
// sub-second fraction and offset.
func parseDateTime(src string) (DateTime, bool) {
	for _, format := range []string{
		"2 Jan 2006 15:04:05.999999999 (-0700)",
		"2 Jan 2006 15:04:05.999999999",
		"2006-01-02T15:04:05.999999999Z0700",
		"2006-01-02T15:04:05.999999999Z07:00",
		"2006-01-02T15:04:05.999999999",
		"2006-01-02 15:04:05.999999999",
	} {
		value, err := time.Parse(format, src)
		if err != nil {
			continue
		}
		return FromGoTime(value), true
	}
	return DateTime{}, false
}

// FromGoTime converts a time.Time into the DateTime with the same civil
// fields, carrying the offset of t's zone rounded to the nearest 15
// minutes. The zone's rules are not consulted; only its fixed offset at t
// survives the conversion.
func FromGoTime(t time.Time) DateTime {
	_, offsetSeconds := t.Zone()

	jd := float64(calendar.ToJDN(t.Year(), int(t.Month()), t.Day())) +
		calendar.ToDayFraction(t.Hour(), t.Minute(), t.Second()) +
		float64(t.Nanosecond())/1e9/calendar.SecondsPerDay

	return DateTime{
		jd:     jd,
		offset: int(math.Round(float64(offsetSeconds) / secondsPerOffsetUnit)),
	}
}
