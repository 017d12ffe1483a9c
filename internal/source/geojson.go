package source

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/paulmach/orb/geojson"

	"geosupport/internal/model"
)

// GeoJSONSource iterates over the features of a GeoJSON feature collection.
type GeoJSONSource struct {
	fc  *geojson.FeatureCollection
	pos int
}

// NewGeoJSONSource parses a GeoJSON feature collection from raw bytes.
func NewGeoJSONSource(data []byte) (*GeoJSONSource, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("source: failed to parse GeoJSON: %w", err)
	}
	return &GeoJSONSource{fc: fc}, nil
}

// OpenGeoJSON reads and parses a GeoJSON file from disk.
func OpenGeoJSON(path string) (*GeoJSONSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("source: failed to read GeoJSON file: %w", err)
	}
	return NewGeoJSONSource(data)
}

func (s *GeoJSONSource) Next() (*model.Feature, error) {
	if s.pos >= len(s.fc.Features) {
		return nil, io.EOF
	}
	gf := s.fc.Features[s.pos]
	s.pos++

	f := &model.Feature{
		ID:       featureID(gf, s.pos-1),
		CRS:      model.CRSWGS84,
		Geometry: gf.Geometry,
		Fields:   gf.Properties,
	}
	return f, nil
}

// featureID extracts a stable identifier from the GeoJSON "id" member,
// falling back to the feature's position in the collection.
func featureID(gf *geojson.Feature, pos int) string {
	switch id := gf.ID.(type) {
	case string:
		if id != "" {
			return id
		}
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case int:
		return strconv.Itoa(id)
	}
	return strconv.Itoa(pos)
}
