// Package calendar converts between civil dates and Julian Day Numbers
// under the hybrid Julian/Gregorian calendar, switching at the Gregorian
// reform of 1582-10-15.
//
// It reproduces the classic astronomical conversion algorithms exactly, so
// that converting any valid civil date to a day number and back always
// yields the original date, on both sides of the reform discontinuity. The
// package also provides the time-of-day decomposition of a day fraction,
// leap year and day-of-year facts, and the month and weekday name tables.
package calendar

import (
	"math"

	"golang.org/x/exp/constraints"
)

// GregorianReformJDN is the Julian Day Number of 1582-10-15, the first day
// of the Gregorian calendar. Both conversion directions branch on this
// threshold and must always agree on it.
const GregorianReformJDN = 2299161

// IsJulian reports whether jdn falls before the Gregorian reform and is
// therefore interpreted under the Julian calendar.
func IsJulian(jdn int) bool { return jdn < GregorianReformJDN }

// floorDiv returns the quotient of a and b rounded toward negative
// infinity.
func floorDiv[T constraints.Integer](a, b T) T {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// ToJDN converts a civil date to its Julian Day Number. Dates on or after
// 1582-10-15 are interpreted under the Gregorian calendar, earlier dates
// under the Julian calendar. The result for an impossible triple such as
// (2021, 2, 30) is the day number of some other date; use IsValidDate to
// detect that case.
func ToJDN(year, month, day int) int {
	// January and February count as months 13 and 14 of the previous year,
	// so the century correction sees them on the right side of leap day.
	if month <= 2 {
		year--
		month += 12
	}

	century := floorDiv(year, 100)
	correction := 2 - century + floorDiv(century, 4)

	jdn := int(math.Floor(365.25*float64(year+4716))) +
		int(math.Floor(30.6001*float64(month+1))) +
		day + correction - 1524

	// The Gregorian century correction does not apply before the reform.
	if jdn < GregorianReformJDN {
		jdn -= correction
	}

	return jdn
}

// FromJDN converts a Julian Day Number back to a civil date. It is the
// exact inverse of ToJDN for every valid civil date.
func FromJDN(jdn int) (year, month, day int) {
	a := jdn
	if jdn >= GregorianReformJDN {
		x := int(math.Floor((float64(jdn) - 1867216.25) / 36524.25))
		a = jdn + 1 + x - floorDiv(x, 4)
	}

	b := a + 1524
	c := int(math.Floor((float64(b) - 122.1) / 365.25))
	d := int(math.Floor(365.25 * float64(c)))
	e := int(math.Floor(float64(b-d) / 30.6001))

	day = b - d - int(math.Floor(30.6001*float64(e)))
	if e <= 13 {
		month = e - 1
	} else {
		month = e - 13
	}
	if month > 2 {
		year = c - 4716
	} else {
		year = c - 4715
	}

	return year, month, day
}

// IsValidDate reports whether (year, month, day) names a real calendar
// date. Rather than consulting month-length tables it round-trips the
// triple through the day-number conversion: any triple that is not an
// actual date, including the civil dates skipped by the Gregorian reform,
// comes back changed.
func IsValidDate(year, month, day int) bool {
	y, m, d := FromJDN(ToJDN(year, month, day))
	return y == year && m == month && d == day
}

// IsLeapYear reports whether year is a leap year: divisible by four and not
// by one hundred, or divisible by four hundred.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// daysBefore counts the days preceding the first of each month, for common
// years in row 0 and leap years in row 1. Slot 0 is unused; months are
// 1-indexed.
var daysBefore = [2][13]int{
	{0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334},
	{0, 0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335},
}

// DayOfYear returns the ordinal day of the year for a civil date, from 1
// for January 1 through 365, or 366 in a leap year, for December 31.
func DayOfYear(year, month, day int) int {
	leap := 0
	if IsLeapYear(year) {
		leap = 1
	}
	return daysBefore[leap][month] + day
}

// monthDays holds month lengths for common years in row 0 and leap years in
// row 1. Slot 0 is unused; months are 1-indexed.
var monthDays = [2][13]int{
	{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
	{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
}

// DaysInMonth returns the number of days in the given month of year.
func DaysInMonth(year, month int) int {
	leap := 0
	if IsLeapYear(year) {
		leap = 1
	}
	return monthDays[leap][month]
}
