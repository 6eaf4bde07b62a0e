package jd_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theory/juliandate/jd"
	"github.com/theory/juliandate/jd/clock"
	"github.com/theory/juliandate/jd/types"
)

func TestDate(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	date, err := jd.Date(2021, 1, 1)
	r.NoError(err)
	a.Equal(2459216, date.JDN())

	_, err = jd.Date(2021, 2, 30)
	r.Error(err)
	r.ErrorIs(err, types.ErrInvalidDate)
}

func TestDateTime(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	value, err := jd.DateTime(2021, 1, 2, 3, 4, 5, 0, 5.5)
	r.NoError(err)
	a.Equal("2 Jan 2021 03:04:05.00 (+0530)", value.String())

	_, err = jd.DateTime(2021, 1, 1, 24, 0, 0, 0, 0)
	r.Error(err)
	r.ErrorIs(err, types.ErrInvalidDate)
}

func TestNow(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	now, err := jd.Now()
	r.NoError(err)

	// Now carries the cached process-local offset and a sane fraction.
	a.Equal(clock.LocalOffset(), now.Offset())
	frac := now.Julian() - math.Floor(now.Julian())
	a.GreaterOrEqual(frac, 0.0)
	a.Less(frac, 1.0)
}

func TestParse(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	value, err := jd.Parse("15 Oct 1582")
	r.NoError(err)
	a.Equal(2299161.0, value.Julian())

	_, err = jd.Parse("not a date")
	r.Error(err)
	r.ErrorIs(err, types.ErrInvalidDate)
	r.EqualError(err, `invalid date: format is not recognized: "not a date"`)
}

func TestMustParse(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.Equal(2459216.0, jd.MustParse("1 Jan 2021").Julian())
	a.Panics(func() { jd.MustParse("") })
}
