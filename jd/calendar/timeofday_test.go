package calendar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDayFractionRoundTrip(t *testing.T) {
	t.Parallel()

	// Every second of the day survives a round trip exactly.
	for hour := 0; hour < HoursPerDay; hour++ {
		for minute := 0; minute < 60; minute++ {
			for second := 0; second < 60; second++ {
				frac := ToDayFraction(hour, minute, second)
				h, m, s, f := FromDayFraction(frac)
				if h != hour || m != minute || s != second || f != 0 {
					t.Fatalf(
						"round trip failed for %02d:%02d:%02d: got %02d:%02d:%02d + %v",
						hour, minute, second, h, m, s, f,
					)
				}
			}
		}
	}
}

func TestFromDayFraction(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name                 string
		frac                 float64
		hour, minute, second int
	}{
		{"midnight", 0, 0, 0, 0},
		{"noon", 0.5, 12, 0, 0},
		{"six_pm", 0.75, 18, 0, 0},
		{"last_second", ToDayFraction(23, 59, 59), 23, 59, 59},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			h, m, s, f := FromDayFraction(tc.frac)
			a.Equal(tc.hour, h)
			a.Equal(tc.minute, m)
			a.Equal(tc.second, s)
			a.Zero(f)
		})
	}
}

func TestFromDayFractionSubSecond(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	frac := ToDayFraction(1, 2, 3) + 0.25/SecondsPerDay
	h, m, s, f := FromDayFraction(frac)
	a.Equal(1, h)
	a.Equal(2, m)
	a.Equal(3, s)
	a.InDelta(0.25, f, 1e-6)
}

func TestFromDayFractionDayCarry(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	// A fraction within tolerance of a full day surfaces as hour 24 for
	// the caller to roll into the next day.
	h, m, s, f := FromDayFraction(math.Nextafter(1, 0))
	a.Equal(HoursPerDay, h)
	a.Zero(m)
	a.Zero(s)
	a.Zero(f)
}

func TestToDayFraction(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.Zero(ToDayFraction(0, 0, 0))
	a.Equal(0.5, ToDayFraction(12, 0, 0))
	a.Equal(0.125, ToDayFraction(3, 0, 0))
	a.InDelta(1.0, ToDayFraction(23, 59, 59)+1.0/SecondsPerDay, 1e-12)
}
