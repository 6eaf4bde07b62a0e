package types

import (
	"database/sql/driver"
	"fmt"

	"github.com/theory/juliandate/jd/calendar"
)

// Date represents a calendar date as an integer Julian Day Number, with an
// implicit zero UTC offset. Date is comparable; == and map-key hashing
// compare day numbers exactly.
type Date struct {
	jdn int
}

// NewDate returns the Date for a civil date. Returns an error wrapping
// ErrInvalidDate if the fields do not name a real calendar date.
func NewDate(year, month, day int) (Date, error) {
	if !calendar.IsValidDate(year, month, day) {
		return Date{}, fmt.Errorf(
			"%w: no date %d-%02d-%02d in the calendar",
			ErrInvalidDate, year, month, day,
		)
	}
	return Date{jdn: calendar.ToJDN(year, month, day)}, nil
}

// DateFromJDN returns the Date for a raw Julian Day Number. The day number
// is trusted; no validation is performed.
func DateFromJDN(jdn int) Date { return Date{jdn: jdn} }

// JDN returns the Julian Day Number of d.
func (d Date) JDN() int { return d.jdn }

// Julian returns the Julian Date of d. The fractional part is always zero.
func (d Date) Julian() float64 { return float64(d.jdn) }

// Civil returns the civil date of d.
func (d Date) Civil() (year, month, day int) { return calendar.FromJDN(d.jdn) }

// Year returns the civil year of d.
func (d Date) Year() int {
	year, _, _ := d.Civil()
	return year
}

// Month returns the civil month of d, from 1 (January) through 12
// (December).
func (d Date) Month() int {
	_, month, _ := d.Civil()
	return month
}

// Day returns the civil day of the month of d.
func (d Date) Day() int {
	_, _, day := d.Civil()
	return day
}

// AddDays returns d shifted by days, which may be negative.
func (d Date) AddDays(days int) Date { return Date{jdn: d.jdn + days} }

// Sub returns the number of days from u to d.
func (d Date) Sub(u Date) int { return d.jdn - u.jdn }

// Compare compares the days named by d and u. If d is before u, it returns
// -1; if d is after u, it returns +1; if they're the same, it returns 0.
func (d Date) Compare(u Date) int {
	switch diff := d.Sub(u); {
	case diff < 0:
		return -1
	case diff > 0:
		return 1
	default:
		return 0
	}
}

// DayOfWeek returns the weekday of d, from 1 (Sunday) through 7
// (Saturday).
func (d Date) DayOfWeek() int { return ((d.jdn+1)%7+7)%7 + 1 }

// DayOfYear returns the ordinal day of the year of d, from 1 through 365,
// or 366 in a leap year.
func (d Date) DayOfYear() int {
	year, month, day := d.Civil()
	return calendar.DayOfYear(year, month, day)
}

// IsLeapYear reports whether the year of d is a leap year.
func (d Date) IsLeapYear() bool { return calendar.IsLeapYear(d.Year()) }

// Midnight promotes d to a DateTime at 00:00:00 with a zero offset.
func (d Date) Midnight() DateTime { return DateTime{jd: float64(d.jdn)} }

// At promotes d to a DateTime at the given time of day. The fraction is a
// sub-second fraction in [0, 1); offsetHours is a fixed UTC offset in
// hours, rounded to the nearest 15 minutes.
func (d Date) At(hour, minute, second int, fraction, offsetHours float64) (DateTime, error) {
	year, month, day := d.Civil()
	return NewDateTime(year, month, day, hour, minute, second, fraction, offsetHours)
}

// dateFormat represents the canonical string format for Date values.
const dateFormat = "2 Jan 2006"

// String returns the representation of d in the form "2 Jan 2021".
func (d Date) String() string {
	year, month, day := d.Civil()
	return fmt.Sprintf("%d %s %d", day, calendar.ShortMonthNames[month], year)
}

// MarshalJSON implements the json.Marshaler interface. The date is a
// quoted string in the canonical "2 Jan 2006" format.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The date must
// be a quoted string in the "2 Jan 2006" or "2006-01-02" format.
func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 {
		return fmt.Errorf("%w: cannot parse %s as %q", ErrInvalidDate, data, dateFormat)
	}
	return d.UnmarshalText(data[1 : len(data)-1])
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return d.MarshalBinary()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(data []byte) error {
	return d.UnmarshalBinary(data)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (d Date) MarshalBinary() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (d *Date) UnmarshalBinary(data []byte) error {
	date, ok := parseDate(string(data))
	if !ok {
		return fmt.Errorf("%w: cannot parse %s as %q", ErrInvalidDate, data, dateFormat)
	}
	*d = date
	return nil
}

// Scan implements sql.Scanner so that Dates can be read from databases
// transparently. Strings and []bytes hold the canonical rendering; int64s
// hold a raw Julian Day Number.
func (d *Date) Scan(src any) error {
	switch src := src.(type) {
	case string:
		// An empty string from a table scans as the null Date.
		if src == "" {
			return nil
		}
		return d.UnmarshalBinary([]byte(src))
	case []byte:
		if len(src) == 0 {
			return nil
		}
		return d.Scan(string(src))
	case int64:
		*d = Date{jdn: int(src)}
	default:
		return fmt.Errorf("%w: unable to scan type %T into Date", ErrInvalidDate, src)
	}

	return nil
}

// Value implements driver.Valuer so that Dates can be written to databases
// transparently. Currently, Dates map to strings. Please consult
// database-specific driver documentation for matching types.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}
