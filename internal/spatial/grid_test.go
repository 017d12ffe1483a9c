package spatial

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geosupport/internal/model"
)

func TestKeyForDeterministic(t *testing.T) {
	a := KeyFor(-123.004, 49.007, 0.01)
	b := KeyFor(-123.004, 49.007, 0.01)
	assert.Equal(t, a, b)
	assert.Equal(t, GridKey{Col: -12300, Row: 4901}, a)
}

func TestGridKeyStringRoundTrip(t *testing.T) {
	key := GridKey{Col: -12300, Row: 4901}
	parsed, err := ParseGridKey(key.String())
	require.NoError(t, err)
	assert.Equal(t, key, parsed)

	_, err = ParseGridKey("not-a-key")
	assert.Error(t, err)
	_, err = ParseGridKey("12:xy")
	assert.Error(t, err)
}

func TestCellBoundsContainsOrigin(t *testing.T) {
	p := orb.Point{-123.004, 49.007}
	key := KeyForPoint(p, 0.01)
	bounds := key.CellBounds(0.01)
	assert.True(t, bounds.Contains(p))
}

func TestFuzzyKeys(t *testing.T) {
	tests := []struct {
		name  string
		point orb.Point
		want  int
	}{
		{"cell interior", orb.Point{5.2, 3.1}, 1},
		{"near vertical boundary", orb.Point{5.49, 3.1}, 2},
		{"near horizontal boundary", orb.Point{5.2, 2.52}, 2},
		{"near corner", orb.Point{5.49, 3.48}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := FuzzyKeys(tt.point, 1.0, 0.05)
			assert.Len(t, keys, tt.want)
			// The point's own cell is always first.
			assert.Equal(t, KeyForPoint(tt.point, 1.0), keys[0])
		})
	}
}

func TestBuildVertexIndex(t *testing.T) {
	points := []orb.Point{{0.1, 0.1}, {0.2, 0.1}, {5.1, 5.2}}
	idx := BuildVertexIndex(points, 1.0)

	assert.Len(t, idx, 2)
	assert.ElementsMatch(t, []int{0, 1}, idx[GridKey{0, 0}])
	assert.Equal(t, []int{2}, idx[GridKey{5, 5}])

	total := 0
	for _, bucket := range idx {
		total += len(bucket)
	}
	assert.Equal(t, len(points), total)
}

func TestBuildFuzzyVertexIndexDuplicatesBoundaryPoints(t *testing.T) {
	points := []orb.Point{{0.49, 0.0}}
	idx := BuildFuzzyVertexIndex(points, 1.0, 0.05)

	assert.Equal(t, []int{0}, idx[GridKey{0, 0}])
	assert.Equal(t, []int{0}, idx[GridKey{1, 0}])
}

func TestBuildIndex(t *testing.T) {
	features := []*model.Feature{
		{ID: "road", Geometry: orb.LineString{{0.1, 0.1}, {0.2, 0.2}, {3.1, 0.1}}},
		{ID: "marker", Geometry: orb.Point{0.15, 0.15}},
	}

	idx, err := BuildIndex(features, IndexOptions{GridSize: 1.0})
	require.NoError(t, err)

	assert.Equal(t, 2, idx.FeatureCount())
	assert.Equal(t, 4, idx.VertexCount())

	cell := idx.LookupPoint(orb.Point{0, 0})
	require.NotNil(t, cell)
	assert.ElementsMatch(t, []int{0, 1}, cell["road"])
	assert.Equal(t, []int{0}, cell["marker"])

	assert.Nil(t, idx.Lookup(GridKey{100, 100}))
}

func TestBuildIndexRejectsBadGridSize(t *testing.T) {
	_, err := BuildIndex(nil, IndexOptions{GridSize: 0})
	assert.Error(t, err)
}

func TestBuildIndexFeatureCap(t *testing.T) {
	features := []*model.Feature{
		{ID: "a", Geometry: orb.Point{0, 0}},
		{ID: "b", Geometry: orb.Point{1, 1}},
	}
	_, err := BuildIndex(features, IndexOptions{GridSize: 1.0, MaxFeatures: 1})
	assert.ErrorIs(t, err, ErrTooManyFeatures)
}

func TestFeatureIDsNear(t *testing.T) {
	features := []*model.Feature{
		{ID: "near", Geometry: orb.Point{0.1, 0.1}},
		{ID: "far", Geometry: orb.Point{50, 50}},
	}
	idx, err := BuildIndex(features, IndexOptions{GridSize: 1.0})
	require.NoError(t, err)

	keys := map[GridKey]struct{}{
		{0, 0}: {},
		{1, 0}: {},
	}
	assert.Equal(t, []string{"near"}, idx.FeatureIDsNear(keys))
}
