package model

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestFeaturePoints(t *testing.T) {
	tests := []struct {
		name     string
		geometry orb.Geometry
		vertices int
		parts    int
	}{
		{"point", orb.Point{1, 2}, 1, 1},
		{"line", orb.LineString{{0, 0}, {1, 1}, {2, 2}}, 3, 1},
		{
			"polygon with hole",
			orb.Polygon{
				{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
				{{4, 4}, {6, 4}, {6, 6}, {4, 6}, {4, 4}},
			},
			10, 2,
		},
		{
			"multi line",
			orb.MultiLineString{{{0, 0}, {1, 1}}, {{2, 2}, {3, 3}}},
			4, 2,
		},
		{
			"collection",
			orb.Collection{orb.Point{0, 0}, orb.LineString{{1, 1}, {2, 2}}},
			3, 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Feature{ID: "f", Geometry: tt.geometry}
			assert.Len(t, f.Points(), tt.vertices)
			assert.Equal(t, tt.vertices, f.VertexCount())
			assert.Equal(t, tt.parts, f.PartCount())
		})
	}
}

func TestFeatureBound(t *testing.T) {
	f := &Feature{Geometry: orb.LineString{{-1, -2}, {3, 4}}}
	b := f.Bound()
	assert.Equal(t, orb.Point{-1, -2}, b.Min)
	assert.Equal(t, orb.Point{3, 4}, b.Max)
}
