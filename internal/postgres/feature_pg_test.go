package postgres

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geosupport/internal/model"
)

func TestFeaturePGRoundTrip(t *testing.T) {
	f := &model.Feature{
		ID:       "road-7",
		CRS:      model.CRSWGS84,
		Geometry: orb.LineString{{-123.1, 49.2}, {-123.0, 49.3}},
		Fields:   map[string]any{"name": "Oak St", "lanes": 2.0},
	}

	row, err := FromFeature(f)
	require.NoError(t, err)
	assert.Equal(t, "road-7", row.ID)
	assert.Contains(t, row.Geometry, "LINESTRING")
	assert.Contains(t, row.Fields, "Oak St")

	back, err := row.ToFeature()
	require.NoError(t, err)
	assert.Equal(t, f.ID, back.ID)
	assert.Equal(t, f.CRS, back.CRS)
	assert.Equal(t, f.Geometry, back.Geometry)
	assert.Equal(t, f.Fields, back.Fields)
}

func TestFeaturePGEmptyGeometryAndFields(t *testing.T) {
	row, err := FromFeature(&model.Feature{ID: "bare"})
	require.NoError(t, err)
	assert.Equal(t, "", row.Geometry)
	assert.Equal(t, "{}", row.Fields)

	back, err := row.ToFeature()
	require.NoError(t, err)
	assert.Nil(t, back.Geometry)
	assert.Nil(t, back.Fields)
}

func TestFeaturePGBadGeometry(t *testing.T) {
	row := &FeaturePG{ID: "x", Geometry: "NOT WKT"}
	_, err := row.ToFeature()
	assert.Error(t, err)
}
