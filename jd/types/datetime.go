package types

import (
	"database/sql/driver"
	"fmt"
	"math"

	"github.com/theory/juliandate/jd/calendar"
)

const (
	// offsetUnitsPerHour is the number of 15-minute offset units per hour.
	offsetUnitsPerHour = 4

	// offsetUnitsPerDay converts an offset difference into a day fraction.
	offsetUnitsPerDay = calendar.HoursPerDay * offsetUnitsPerHour

	// maxOffset bounds stored offsets to ±24 hours. The conversion
	// algorithms never need the bound, but nothing on Earth lies beyond
	// it, so constructors reject offsets outside it as a sanity check.
	maxOffset = offsetUnitsPerDay

	// minutesPerOffsetUnit is the length of one offset unit in minutes.
	minutesPerOffsetUnit = 15
)

// DateTime represents a calendar date and time of day as a real-valued
// Julian Date plus a fixed UTC offset in 15-minute units.
//
// The integral part of the Julian Date identifies the calendar day in
// local time; the fractional part, always in [0, 1), encodes the time of
// day. The offset never reinterprets the value's own fields. It
// participates only in Sub and Compare, which weigh two values by the
// absolute instants they name.
//
// DateTime is comparable; == and map-key hashing compare the raw
// (jd, offset) pair exactly. Two values naming the same instant under
// different offsets are therefore equal under Compare but distinct under
// ==. See the package documentation.
type DateTime struct {
	jd     float64
	offset int
}

// NewDateTime returns the DateTime for full civil date-time fields. The
// fraction is a sub-second fraction in [0, 1); offsetHours is a fixed UTC
// offset in hours, rounded to the nearest 15 minutes. Returns an error
// wrapping ErrInvalidDate if the fields do not name a real calendar date
// and time of day, or if the offset lies outside ±24 hours.
func NewDateTime(
	year, month, day, hour, minute, second int,
	fraction, offsetHours float64,
) (DateTime, error) {
	if !calendar.IsValidDate(year, month, day) {
		return DateTime{}, fmt.Errorf(
			"%w: no date %d-%02d-%02d in the calendar",
			ErrInvalidDate, year, month, day,
		)
	}
	if hour < 0 || hour >= calendar.HoursPerDay ||
		minute < 0 || minute >= 60 || second < 0 || second >= 60 ||
		fraction < 0 || fraction >= 1 {
		return DateTime{}, fmt.Errorf(
			"%w: no time of day %02d:%02d:%02d plus %v seconds",
			ErrInvalidDate, hour, minute, second, fraction,
		)
	}

	offset := int(math.Round(offsetHours * offsetUnitsPerHour))
	if offset < -maxOffset || offset > maxOffset {
		return DateTime{}, fmt.Errorf(
			"%w: offset %v hours is outside ±24 hours",
			ErrInvalidDate, offsetHours,
		)
	}

	jd := float64(calendar.ToJDN(year, month, day)) +
		calendar.ToDayFraction(hour, minute, second) +
		fraction/calendar.SecondsPerDay

	return DateTime{jd: jd, offset: offset}, nil
}

// FromJD returns the DateTime for a raw Julian Date and fixed UTC offset
// in 15-minute units. Both are trusted; no validation is performed.
func FromJD(jd float64, offset int) DateTime {
	return DateTime{jd: jd, offset: offset}
}

// Julian returns the Julian Date of dt, including the day fraction.
func (dt DateTime) Julian() float64 { return dt.jd }

// Offset returns the fixed UTC offset of dt in 15-minute units.
func (dt DateTime) Offset() int { return dt.offset }

// OffsetHours returns the fixed UTC offset of dt in hours.
func (dt DateTime) OffsetHours() float64 {
	return float64(dt.offset) / offsetUnitsPerHour
}

// dayFraction splits dt into its whole-day and time-of-day parts. A
// fraction within the decomposition tolerance of a full day rolls into the
// next one here, so every derived fact agrees on the calendar day.
func (dt DateTime) dayFraction() (int, float64) {
	day := math.Floor(dt.jd)
	jdn, frac := int(day), dt.jd-day
	if hour, _, _, _ := calendar.FromDayFraction(frac); hour == calendar.HoursPerDay {
		jdn++
		frac = 0
	}
	return jdn, frac
}

// Civil returns the full civil field tuple of dt: calendar date, time of
// day, and the remaining fraction of a second.
func (dt DateTime) Civil() (year, month, day, hour, minute, second int, fraction float64) {
	jdn, frac := dt.dayFraction()
	hour, minute, second, fraction = calendar.FromDayFraction(frac)
	year, month, day = calendar.FromJDN(jdn)
	return year, month, day, hour, minute, second, fraction
}

// Date demotes dt to its calendar date, discarding the time of day and the
// offset.
func (dt DateTime) Date() Date {
	jdn, _ := dt.dayFraction()
	return Date{jdn: jdn}
}

// Year returns the civil year of dt.
func (dt DateTime) Year() int {
	year, _, _, _, _, _, _ := dt.Civil()
	return year
}

// Month returns the civil month of dt, from 1 (January) through 12
// (December).
func (dt DateTime) Month() int {
	_, month, _, _, _, _, _ := dt.Civil()
	return month
}

// Day returns the civil day of the month of dt.
func (dt DateTime) Day() int {
	_, _, day, _, _, _, _ := dt.Civil()
	return day
}

// Hour returns the hour of the day of dt, from 0 through 23.
func (dt DateTime) Hour() int {
	_, _, _, hour, _, _, _ := dt.Civil()
	return hour
}

// Minute returns the minute of the hour of dt, from 0 through 59.
func (dt DateTime) Minute() int {
	_, _, _, _, minute, _, _ := dt.Civil()
	return minute
}

// Second returns the second of the minute of dt, from 0 through 59.
func (dt DateTime) Second() int {
	_, _, _, _, _, second, _ := dt.Civil()
	return second
}

// Fraction returns the sub-second fraction of dt, in [0, 1).
func (dt DateTime) Fraction() float64 {
	_, _, _, _, _, _, fraction := dt.Civil()
	return fraction
}

// Add returns dt shifted by days, which may be negative or fractional. The
// offset is unchanged.
func (dt DateTime) Add(days float64) DateTime {
	return DateTime{jd: dt.jd + days, offset: dt.offset}
}

// Sub returns the difference between dt and u in days. The offsets are
// reconciled first by converting their difference in 15-minute units into
// a day fraction, so two values naming the same absolute instant under
// different fixed offsets subtract to zero. Neither value's own fields are
// converted into the other's zone.
func (dt DateTime) Sub(u DateTime) float64 {
	return (dt.jd - u.jd) - float64(dt.offset-u.offset)/offsetUnitsPerDay
}

// Compare compares the absolute instants named by dt and u, defined as the
// sign of Sub so that ordering and difference always agree. If dt is
// before u, it returns -1; if dt is after u, it returns +1; if they name
// the same instant, it returns 0. Note that values comparing equal here
// may still differ under ==, which also distinguishes offsets.
func (dt DateTime) Compare(u DateTime) int {
	switch diff := dt.Sub(u); {
	case diff < 0:
		return -1
	case diff > 0:
		return 1
	default:
		return 0
	}
}

// DayOfWeek returns the weekday of dt, from 1 (Sunday) through 7
// (Saturday).
func (dt DateTime) DayOfWeek() int {
	jdn, _ := dt.dayFraction()
	return ((jdn+1)%7+7)%7 + 1
}

// DayOfYear returns the ordinal day of the year of dt, from 1 through 365,
// or 366 in a leap year.
func (dt DateTime) DayOfYear() int {
	year, month, day, _, _, _, _ := dt.Civil()
	return calendar.DayOfYear(year, month, day)
}

// IsLeapYear reports whether the year of dt is a leap year.
func (dt DateTime) IsLeapYear() bool { return calendar.IsLeapYear(dt.Year()) }

// dateTimeFormat represents the canonical string format for DateTime
// values.
const dateTimeFormat = "2 Jan 2006 15:04:05.00 (-0700)"

// String returns the representation of dt in the form
// "2 Jan 2021 03:04:05.00 (+0530)", with the offset expressed as signed
// hours and minutes.
func (dt DateTime) String() string {
	year, month, day, hour, minute, second, fraction := dt.Civil()

	sign := '+'
	offset := dt.offset
	if offset < 0 {
		sign = '-'
		offset = -offset
	}

	// Round the fraction to hundredths, clamping rather than carrying
	// into the second.
	centi := int(math.Round(fraction * 100))
	if centi == 100 {
		centi = 99
	}

	return fmt.Sprintf(
		"%d %s %d %02d:%02d:%02d.%02d (%c%02d%02d)",
		day, calendar.ShortMonthNames[month], year,
		hour, minute, second, centi,
		sign, offset/offsetUnitsPerHour,
		offset%offsetUnitsPerHour*minutesPerOffsetUnit,
	)
}

// MarshalJSON implements the json.Marshaler interface. The value is a
// quoted string in the canonical "2 Jan 2006 15:04:05.00 (-0700)" format.
func (dt DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + dt.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The value must
// be a quoted string in one of the formats accepted by Parse for
// date-times.
func (dt *DateTime) UnmarshalJSON(data []byte) error {
	if len(data) < 2 {
		return fmt.Errorf("%w: cannot parse %s as %q", ErrInvalidDate, data, dateTimeFormat)
	}
	return dt.UnmarshalText(data[1 : len(data)-1])
}

// MarshalText implements encoding.TextMarshaler.
func (dt DateTime) MarshalText() ([]byte, error) {
	return dt.MarshalBinary()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (dt *DateTime) UnmarshalText(data []byte) error {
	return dt.UnmarshalBinary(data)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (dt DateTime) MarshalBinary() ([]byte, error) {
	return []byte(dt.String()), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (dt *DateTime) UnmarshalBinary(data []byte) error {
	value, ok := parseDateTime(string(data))
	if !ok {
		return fmt.Errorf("%w: cannot parse %s as %q", ErrInvalidDate, data, dateTimeFormat)
	}
	*dt = value
	return nil
}

// Scan implements sql.Scanner so that DateTimes can be read from databases
// transparently. Strings and []bytes hold the canonical rendering;
// float64s hold a raw Julian Date with a zero offset.
func (dt *DateTime) Scan(src any) error {
	switch src := src.(type) {
	case string:
		// An empty string from a table scans as the null DateTime.
		if src == "" {
			return nil
		}
		return dt.UnmarshalBinary([]byte(src))
	case []byte:
		if len(src) == 0 {
			return nil
		}
		return dt.Scan(string(src))
	case float64:
		*dt = DateTime{jd: src}
	default:
		return fmt.Errorf("%w: unable to scan type %T into DateTime", ErrInvalidDate, src)
	}

	return nil
}

// Value implements driver.Valuer so that DateTimes can be written to
// databases transparently. Currently, DateTimes map to strings. Please
// consult database-specific driver documentation for matching types.
func (dt DateTime) Value() (driver.Value, error) {
	return dt.String(), nil
}
