package source

import (
	"io"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geosupport/internal/model"
)

func TestSliceSource(t *testing.T) {
	features := []*model.Feature{
		{ID: "a", Geometry: orb.Point{1, 2}},
		{ID: "b", Geometry: orb.Point{3, 4}},
	}
	src := NewSliceSource(features)

	first, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", first.ID)

	second, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, "b", second.ID)

	_, err = src.Next()
	assert.Equal(t, io.EOF, err)
}

func TestReadAll(t *testing.T) {
	features := []*model.Feature{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	out, err := ReadAll(NewSliceSource(features))
	require.NoError(t, err)
	assert.Equal(t, features, out)
}

const sampleGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "id": "road-1",
      "geometry": {"type": "LineString", "coordinates": [[-123.1, 49.2], [-123.0, 49.3]]},
      "properties": {"name": "Main St", "lanes": 2}
    },
    {
      "type": "Feature",
      "geometry": {"type": "Point", "coordinates": [-123.05, 49.25]},
      "properties": {}
    }
  ]
}`

func TestGeoJSONSource(t *testing.T) {
	src, err := NewGeoJSONSource([]byte(sampleGeoJSON))
	require.NoError(t, err)

	road, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, "road-1", road.ID)
	assert.Equal(t, model.CRSWGS84, road.CRS)
	assert.Equal(t, "Main St", road.Fields["name"])
	require.IsType(t, orb.LineString{}, road.Geometry)
	assert.Len(t, road.Geometry.(orb.LineString), 2)

	point, err := src.Next()
	require.NoError(t, err)
	// No id member: position in the collection is the fallback.
	assert.Equal(t, "1", point.ID)

	_, err = src.Next()
	assert.Equal(t, io.EOF, err)
}

func TestGeoJSONSourceBadInput(t *testing.T) {
	_, err := NewGeoJSONSource([]byte("{not json"))
	assert.Error(t, err)
}

func TestOpenGeoJSONMissingFile(t *testing.T) {
	_, err := OpenGeoJSON("/nonexistent/path.geojson")
	assert.Error(t, err)
}
