package geometry

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBisectRectangle(t *testing.T) {
	rect := orb.Ring{{0, 0}, {10, 0}, {10, 4}, {0, 4}, {0, 0}}

	halfA, halfB, err := BisectRectangle(rect)
	require.NoError(t, err)

	areaA := planar.Area(halfA)
	areaB := planar.Area(halfB)
	assert.InDelta(t, 20, areaA, 1e-9)
	assert.InDelta(t, 20, areaB, 1e-9)
	assert.InDelta(t, planar.Area(rect), areaA+areaB, 1e-9)

	// The cut runs through the midpoints of the two long edges.
	assert.Contains(t, halfA, orb.Point{5, 0})
	assert.Contains(t, halfA, orb.Point{5, 4})
	assert.Contains(t, halfB, orb.Point{5, 0})
	assert.Contains(t, halfB, orb.Point{5, 4})
}

func TestBisectRectangleVerticalLongAxis(t *testing.T) {
	rect := orb.Ring{{0, 0}, {4, 0}, {4, 10}, {0, 10}, {0, 0}}

	halfA, halfB, err := BisectRectangle(rect)
	require.NoError(t, err)
	assert.InDelta(t, 20, planar.Area(halfA), 1e-9)
	assert.InDelta(t, 20, planar.Area(halfB), 1e-9)
	assert.Contains(t, halfA, orb.Point{4, 5})
	assert.Contains(t, halfB, orb.Point{0, 5})
}

func TestBisectRectangleRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		ring orb.Ring
	}{
		{"Triangle", orb.Ring{{0, 0}, {1, 0}, {0, 1}, {0, 0}}},
		{"Unclosed", orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 2}}},
		{"RepeatedVertex", orb.Ring{{0, 0}, {1, 0}, {1, 0}, {0, 1}, {0, 0}}},
		{"Pentagon", orb.Ring{{0, 0}, {2, 0}, {3, 1}, {2, 2}, {0, 2}, {0, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := BisectRectangle(tt.ring)
			assert.ErrorIs(t, err, ErrNotQuad)
		})
	}
}
