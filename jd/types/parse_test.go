package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		src  string
		want Value
	}{
		{
			"canonical_date",
			"1 Jan 2021",
			mustDate(t, 2021, 1, 1),
		},
		{
			"iso_date",
			"2021-01-01",
			mustDate(t, 2021, 1, 1),
		},
		{
			"canonical_datetime",
			"2 Jan 2021 03:04:05.00 (+0530)",
			mustDateTime(t, 2021, 1, 2, 3, 4, 5, 0, 5.5),
		},
		{
			"datetime_no_offset",
			"2 Jan 2021 03:04:05",
			mustDateTime(t, 2021, 1, 2, 3, 4, 5, 0, 0),
		},
		{
			"iso_datetime_utc",
			"2021-01-02T03:04:05Z",
			mustDateTime(t, 2021, 1, 2, 3, 4, 5, 0, 0),
		},
		{
			"iso_datetime_offset",
			"2021-01-02T03:04:05+05:30",
			mustDateTime(t, 2021, 1, 2, 3, 4, 5, 0, 5.5),
		},
		{
			"iso_datetime_space",
			"2021-01-02 03:04:05",
			mustDateTime(t, 2021, 1, 2, 3, 4, 5, 0, 0),
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			value, ok := Parse(tc.src)
			r.True(ok)
			a.Equal(tc.want, value)
		})
	}
}

func TestParseUnrecognized(t *testing.T) {
	t.Parallel()

	for _, src := range []string{
		"",
		"not a date",
		"32 Jan 2021",
		"2021/01/01",
		"03:04:05",
	} {
		t.Run(src, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			value, ok := Parse(src)
			a.False(ok)
			a.Nil(value)
		})
	}
}

func TestFromGoTime(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	value := FromGoTime(time.Date(
		2021, 1, 2, 3, 4, 5, 0, time.FixedZone("", 5*3600+30*60),
	))
	a.Equal(mustDateTime(t, 2021, 1, 2, 3, 4, 5, 0, 5.5), value)

	// Offsets round to the nearest 15 minutes.
	rounded := FromGoTime(time.Date(
		2021, 1, 2, 3, 4, 5, 0, time.FixedZone("", 7*60),
	))
	a.Zero(rounded.Offset())

	// Sub-second precision carries through.
	frac := FromGoTime(time.Date(2021, 1, 2, 3, 4, 5, 250_000_000, time.UTC))
	a.InDelta(0.25, frac.Fraction(), 1e-6)
}
