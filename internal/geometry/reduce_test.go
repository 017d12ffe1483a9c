package geometry

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimumBoundingRectangleAxisAligned(t *testing.T) {
	ring := orb.Ring{{0, 0}, {10, 0}, {10, 4}, {0, 4}, {0, 0}}

	mbr, err := MinimumBoundingRectangle(ring)
	require.NoError(t, err)
	assert.InDelta(t, 10, mbr.Length, 1e-9)
	assert.InDelta(t, 4, mbr.Width, 1e-9)
	assert.InDelta(t, 40, planar.Area(mbr.Ring), 1e-9)
	assert.InDelta(t, 2.5, mbr.Ratio(), 1e-9)
}

func TestMinimumBoundingRectangleRotated(t *testing.T) {
	// A 10x2 rectangle rotated 45 degrees. The axis-aligned bound would be
	// square-ish; the minimum-area rectangle must recover the 10x2 shape.
	ring := orb.Ring{}
	base := []orb.Point{{0, 0}, {10, 0}, {10, 2}, {0, 2}, {0, 0}}
	const s = 0.7071067811865476 // sin/cos of 45 degrees
	for _, p := range base {
		ring = append(ring, orb.Point{p[0]*s - p[1]*s, p[0]*s + p[1]*s})
	}

	mbr, err := MinimumBoundingRectangle(ring)
	require.NoError(t, err)
	assert.InDelta(t, 10, mbr.Length, 1e-6)
	assert.InDelta(t, 2, mbr.Width, 1e-6)
}

func TestMinimumBoundingRectangleDegenerate(t *testing.T) {
	_, err := MinimumBoundingRectangle(orb.Ring{{0, 0}, {1, 1}, {2, 2}, {0, 0}})
	assert.ErrorIs(t, err, ErrTooFewPoints)
}

func TestClipToConvexRing(t *testing.T) {
	subject := orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}
	clip := orb.Ring{{5, -1}, {11, -1}, {11, 11}, {5, 11}, {5, -1}}

	clipped := ClipToConvexRing(subject, clip)
	require.NotNil(t, clipped)
	assert.InDelta(t, 50, planar.Area(clipped), 1e-9)
}

func TestClipToConvexRingDisjoint(t *testing.T) {
	subject := orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}
	clip := orb.Ring{{5, 5}, {6, 5}, {6, 6}, {5, 6}, {5, 5}}
	assert.Nil(t, ClipToConvexRing(subject, clip))
}

func TestReduceAcceptsCompactPolygon(t *testing.T) {
	square := orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}

	out, err := Reduce(square, 2, []orb.Point{{0.5, 0.5}}, nil)
	require.NoError(t, err)
	assert.Equal(t, square, out)
}

func TestReduceShortensElongatedPolygon(t *testing.T) {
	// 40x2 strip with the reference point near the left end.
	strip := orb.Ring{{0, 0}, {40, 0}, {40, 2}, {0, 2}, {0, 0}}
	ref := orb.Point{1, 1}

	out, err := Reduce(strip, 3, []orb.Point{ref}, nil)
	require.NoError(t, err)

	mbr, err := MinimumBoundingRectangle(out)
	require.NoError(t, err)
	assert.Less(t, mbr.Ratio(), 3.0)
	assert.True(t, PointInPolygon(orb.Polygon{out}, ref))
}

func TestReduceNoReferencePoint(t *testing.T) {
	strip := orb.Ring{{0, 0}, {40, 0}, {40, 2}, {0, 2}, {0, 0}}

	_, err := Reduce(strip, 3, []orb.Point{{100, 100}}, nil)
	assert.ErrorIs(t, err, ErrNoReferencePoint)

	_, err = Reduce(strip, 3, nil, nil)
	assert.ErrorIs(t, err, ErrNoReferencePoint)
}

func TestReduceIterationCap(t *testing.T) {
	// Ratio 20 with threshold 1.01 cannot converge in two halvings.
	strip := orb.Ring{{0, 0}, {40, 0}, {40, 2}, {0, 2}, {0, 0}}

	_, err := Reduce(strip, 1.01, []orb.Point{{1, 1}}, &ReduceOptions{MaxIterations: 2})
	assert.ErrorIs(t, err, ErrReduceDiverged)
}
