package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	name, seconds := time.Now().Zone()
	a.Equal(name, LocalZone())

	offset := LocalOffset()
	a.GreaterOrEqual(offset, -maxOffset)
	a.LessOrEqual(offset, maxOffset)

	// The cached offset is the zone offset rounded to 15 minutes.
	a.InDelta(float64(seconds), float64(offset*secondsPerUnit), secondsPerUnit/2)

	// Two reads see the same cached pair.
	a.Equal(offset, LocalOffset())
	a.Equal(name, LocalZone())
}

func TestInstant(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	instant, err := Instant()
	r.NoError(err)

	// The instant carries a fixed-offset zone on the unit grid.
	_, seconds := instant.Zone()
	a.Zero(seconds % secondsPerUnit)
	a.Equal(LocalOffset()*secondsPerUnit, seconds)

	// And it tracks the system clock.
	a.LessOrEqual(time.Since(instant), time.Minute)
}
