package calendar

import "math"

// Units of a day.
const (
	HoursPerDay   = 24
	MinutesPerDay = 24 * 60
	SecondsPerDay = 24 * 60 * 60

	minutesPerHour   = 60
	secondsPerMinute = 60
	secondsPerHour   = 60 * 60
)

// carryEps is the decomposition tolerance in seconds. A day fraction
// recovered from a full-size real-valued Julian Date carries the rounding
// error of the whole value, which near modern day numbers amounts to
// roughly a tenth of a millisecond. Remainders closer than carryEps to the
// next whole unit therefore carry over instead of truncating down, keeping
// whole-second values exact through a round trip.
const carryEps = 5e-4

// split separates x into its integer part and remainder, snapping the
// remainder to zero when it sits within carryEps seconds of an integer on
// either side. unitSeconds is the length in seconds of one unit of x.
func split(x, unitSeconds float64) (int, float64) {
	n := math.Floor(x)
	f := x - n
	switch eps := carryEps / unitSeconds; {
	case f > 1-eps:
		n++
		f = 0
	case f < eps:
		f = 0
	}
	return int(n), f
}

// FromDayFraction decomposes a fraction of a day in [0, 1) into the hour,
// minute, and second of the day plus the remaining fraction of a second,
// by successive division: first by 1/24, then the remainder by 1/1440,
// then by 1/86400. The remainder keeps its float64 representation through
// every step, so recomposing loses no precision.
//
// Because every step uses the same absolute tolerance, a carry can only
// happen exactly on a boundary of the next larger unit, and minute and
// second never come back as 60. A fraction within the tolerance of a full
// day decomposes to hour 24; callers roll that into the next day.
func FromDayFraction(frac float64) (hour, minute, second int, fraction float64) {
	hour, frac = split(frac*HoursPerDay, secondsPerHour)
	minute, frac = split(frac*minutesPerHour, secondsPerMinute)
	second, fraction = split(frac*secondsPerMinute, 1)
	return hour, minute, second, fraction
}

// ToDayFraction composes an hour, minute, and second of the day into a
// fraction of a day. It is the exact inverse of FromDayFraction at
// whole-second granularity; sub-second fractions are the caller's to add
// as fraction/86400.
func ToDayFraction(hour, minute, second int) float64 {
	return float64(hour)/HoursPerDay +
		float64(minute)/MinutesPerDay +
		float64(second)/SecondsPerDay
}
