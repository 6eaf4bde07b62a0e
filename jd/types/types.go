// Package types provides the Julian-Date value types Date and DateTime.
//
// Both types store a Julian Date: a continuous count of days since the
// epoch of -4712-01-01 in the hybrid Julian/Gregorian calendar. Date keeps
// an integer Julian Day Number identifying a calendar day. DateTime keeps a
// real-valued Julian Date whose integral part identifies the calendar day
// in local time and whose fractional part, always in [0, 1), encodes the
// time of day, together with a fixed UTC offset in 15-minute units.
//
// The offset is stored, never reinterpreted: it does not convert a value's
// own fields into another zone. It participates only in [DateTime.Sub] and
// [DateTime.Compare], which reconcile offsets so that two values naming the
// same absolute instant subtract to zero. Exact equality with == and
// map-key hashing compare the raw (jd, offset) pair instead, so two such
// values remain distinct under ==. This asymmetry between ordering and
// equality is deliberate and documented; see DESIGN.md.
//
// Values are immutable: every operation returns a new value.
package types

import "errors"

// ErrInvalidDate wraps errors returned by the types package for civil
// fields that do not name a real calendar date or time.
var ErrInvalidDate = errors.New("invalid date")

// Value is the interface shared by Date and DateTime.
type Value interface {
	// Julian returns the value's Julian Date, including any day fraction.
	Julian() float64

	// String returns the canonical rendering of the value.
	String() string
}
