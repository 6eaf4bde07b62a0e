// Package clock binds the library to the operating environment's wall
// clock.
//
// The process-local zone name and fixed UTC offset are resolved once, on
// first use, and cached for the life of the process; timezone rules are
// never consulted again. The cache is written exactly once under
// sync.OnceValues, so reads need no further synchronization.
package clock

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"
)

// ErrEnvironment wraps errors reading the clock or local zone from the
// operating environment.
var ErrEnvironment = errors.New("environment")

const (
	// secondsPerUnit is the length of one 15-minute offset unit in
	// seconds.
	secondsPerUnit = 15 * 60

	// maxOffset bounds sane local offsets to ±24 hours, in 15-minute
	// units.
	maxOffset = 24 * 4
)

// local resolves the process-local zone name and fixed UTC offset, in
// 15-minute units, once.
var local = sync.OnceValues(func() (string, int) {
	name, seconds := time.Now().Zone()
	return name, int(math.Round(float64(seconds) / secondsPerUnit))
})

// LocalZone returns the name of the process-local time zone as the
// environment reported it on first use.
func LocalZone() string {
	name, _ := local()
	return name
}

// LocalOffset returns the process-local fixed UTC offset in 15-minute
// units.
func LocalOffset() int {
	_, offset := local()
	return offset
}

// Instant returns the current instant in a fixed-offset copy of the
// process-local zone. Returns an error wrapping ErrEnvironment if the
// environment reports an offset outside ±24 hours.
func Instant() (time.Time, error) {
	name, offset := local()
	if offset < -maxOffset || offset > maxOffset {
		return time.Time{}, fmt.Errorf(
			"%w: local zone %q reports an offset outside ±24 hours",
			ErrEnvironment, name,
		)
	}
	return time.Now().In(time.FixedZone(name, offset*secondsPerUnit)), nil
}
