// Package jd represents calendar dates and date-times as Julian Dates: a
// continuous count of days, possibly fractional, since -4712-01-01 in the
// hybrid Julian/Gregorian calendar. It provides bidirectional conversion
// between that axis and civil calendar fields, and arithmetic and ordering
// over values carrying an optional fixed UTC offset.
//
// The conversion engine lives in the calendar subpackage, the Date and
// DateTime value types in the types subpackage, and the wall-clock binding
// in the clock subpackage. This package ties them together behind a small
// functional API: construction with [Date], [DateTime], [Now], and
// [Parse]; everything else hangs off the returned values.
//
// There is no timezone handling anywhere: an offset is stored and compared
// but never used to convert a value's fields into another zone, and no
// zone database is ever consulted beyond the one-time read of the local
// offset by [Now].
package jd

import (
	"fmt"

	"github.com/theory/juliandate/jd/clock"
	"github.com/theory/juliandate/jd/types"
)

// Date returns the date-only value for a civil date. Returns an error
// wrapping [types.ErrInvalidDate] if the fields do not name a real
// calendar date.
func Date(year, month, day int) (types.Date, error) {
	return types.NewDate(year, month, day)
}

// DateTime returns the date-time value for full civil fields. The fraction
// is a sub-second fraction in [0, 1); offsetHours is a fixed UTC offset in
// hours, rounded to the nearest 15 minutes. Returns an error wrapping
// [types.ErrInvalidDate] if the fields do not name a real calendar date
// and time of day.
func DateTime(
	year, month, day, hour, minute, second int,
	fraction, offsetHours float64,
) (types.DateTime, error) {
	return types.NewDateTime(
		year, month, day, hour, minute, second, fraction, offsetHours,
	)
}

// Now returns the current date-time with the process-local fixed UTC
// offset. Returns an error wrapping [clock.ErrEnvironment] if the
// environment cannot supply a sane clock reading.
func Now() (types.DateTime, error) {
	instant, err := clock.Instant()
	if err != nil {
		return types.DateTime{}, err
	}
	return types.FromGoTime(instant), nil
}

// Parse parses src into a Date or DateTime, trying the canonical
// renderings and a handful of ISO 8601 layouts. Returns an error wrapping
// [types.ErrInvalidDate] if no layout matches.
func Parse(src string) (types.Value, error) {
	value, ok := types.Parse(src)
	if !ok {
		return nil, fmt.Errorf(
			`%w: format is not recognized: %q`, types.ErrInvalidDate, src,
		)
	}
	return value, nil
}

// MustParse is like Parse but panics on parse failure.
func MustParse(src string) types.Value {
	value, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return value
}
