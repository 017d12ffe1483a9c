package spatial

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestHaversineMeters(t *testing.T) {
	// One degree of latitude along a meridian.
	d := HaversineMeters(orb.Point{0, 0}, orb.Point{0, 1})
	assert.InDelta(t, 111195, d, 50)

	assert.InDelta(t, 0, HaversineMeters(orb.Point{10, 20}, orb.Point{10, 20}), 1e-6)
}

func TestMoveToward(t *testing.T) {
	a := orb.Point{0, 0}
	b := orb.Point{0, 1}

	mid := MoveToward(a, b, 55597)
	assert.InDelta(t, 0.5, mid[1], 0.001)
	assert.InDelta(t, 0, mid[0], 0.001)

	// Overshooting clamps to the destination.
	assert.Equal(t, b, MoveToward(a, b, 1e7))
}

func TestDestinationPoint(t *testing.T) {
	north := DestinationPoint(orb.Point{0, 0}, 0, 111195)
	assert.InDelta(t, 1, north[1], 0.001)
	assert.InDelta(t, 0, north[0], 0.001)

	east := DestinationPoint(orb.Point{0, 0}, 90, 111195)
	assert.InDelta(t, 1, east[0], 0.001)
	assert.InDelta(t, 0, east[1], 0.001)
}
