package geometry

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistAndMidpoints(t *testing.T) {
	a := orb.Point{0, 0}
	b := orb.Point{3, 4}

	assert.InDelta(t, 5, Dist(a, b), 1e-9)
	assert.Equal(t, orb.Point{1.5, 2}, Midpoint(a, b))
	assert.Equal(t, orb.Point{0.3, 0.4}, MidpointFractional(a, b, 0.1))
}

func TestIsClosed(t *testing.T) {
	assert.True(t, IsClosed(orb.LineString{{0, 0}, {1, 0}, {0, 0}}))
	assert.False(t, IsClosed(orb.LineString{{0, 0}, {1, 0}}))
	assert.False(t, IsClosed(orb.LineString{{0, 0}}))
}

func TestFromCoords(t *testing.T) {
	tests := []struct {
		name     string
		coords   []orb.Point
		expected orb.Geometry
		wantErr  bool
	}{
		{"Empty", nil, nil, true},
		{"Point", []orb.Point{{1, 2}}, orb.Point{1, 2}, false},
		{
			"Line",
			[]orb.Point{{0, 0}, {1, 1}, {2, 0}},
			orb.LineString{{0, 0}, {1, 1}, {2, 0}},
			false,
		},
		{
			"Polygon",
			[]orb.Point{{0, 0}, {1, 0}, {1, 1}, {0, 0}},
			orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := FromCoords(tt.coords)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, g)
		})
	}
}

func TestPolygonToLines(t *testing.T) {
	p := orb.Polygon{
		{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
		{{4, 4}, {6, 4}, {6, 6}, {4, 6}, {4, 4}},
	}

	lines := PolygonToLines(p)
	require.Len(t, lines, 2)
	assert.True(t, IsClosed(lines[0]))
	assert.True(t, IsClosed(lines[1]))
	assert.Len(t, lines[0], 5)
}

func TestPointInPolygon(t *testing.T) {
	withHole := orb.Polygon{
		{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
		{{4, 4}, {6, 4}, {6, 6}, {4, 6}, {4, 4}},
	}

	assert.True(t, PointInPolygon(withHole, orb.Point{1, 1}))
	assert.False(t, PointInPolygon(withHole, orb.Point{5, 5})) // inside the hole
	assert.False(t, PointInPolygon(withHole, orb.Point{11, 5}))
}
