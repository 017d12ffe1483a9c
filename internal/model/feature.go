package model

import (
	"time"

	"github.com/paulmach/orb"
)

// CRS is an explicit EPSG-style numeric spatial reference code. Geometry is
// always plain coordinates; the reference system travels next to it on the
// feature, never implicitly inside the geometry.
type CRS int

const (
	// CRSUnknown marks features whose spatial reference was not declared.
	CRSUnknown CRS = 0
	// CRSWGS84 is plain lon/lat (EPSG:4326).
	CRSWGS84 CRS = 4326
)

// Feature is a single record: an identifier, a geometry, the CRS the
// geometry is expressed in and a free-form attribute map.
type Feature struct {
	ID       string
	CRS      CRS
	Geometry orb.Geometry
	Fields   map[string]any

	UpdatedAt time.Time
}

// Bound returns the feature's axis-aligned bounding box.
func (f *Feature) Bound() orb.Bound {
	return f.Geometry.Bound()
}

// Points returns every vertex of the feature's geometry, in ring/part order.
func (f *Feature) Points() []orb.Point {
	var pts []orb.Point
	appendGeometry(&pts, f.Geometry)
	return pts
}

// VertexCount returns the total number of vertices in the geometry.
func (f *Feature) VertexCount() int {
	return len(f.Points())
}

// PartCount returns the number of parts (rings, members) in the geometry.
func (f *Feature) PartCount() int {
	switch g := f.Geometry.(type) {
	case orb.Point:
		return 1
	case orb.MultiPoint:
		return len(g)
	case orb.LineString:
		return 1
	case orb.MultiLineString:
		return len(g)
	case orb.Ring:
		return 1
	case orb.Polygon:
		return len(g)
	case orb.MultiPolygon:
		n := 0
		for _, p := range g {
			n += len(p)
		}
		return n
	case orb.Collection:
		n := 0
		for _, sub := range g {
			n += (&Feature{Geometry: sub}).PartCount()
		}
		return n
	default:
		return 0
	}
}

func appendGeometry(pts *[]orb.Point, g orb.Geometry) {
	switch v := g.(type) {
	case orb.Point:
		*pts = append(*pts, v)
	case orb.MultiPoint:
		*pts = append(*pts, v...)
	case orb.LineString:
		*pts = append(*pts, v...)
	case orb.MultiLineString:
		for _, ls := range v {
			*pts = append(*pts, ls...)
		}
	case orb.Ring:
		*pts = append(*pts, v...)
	case orb.Polygon:
		for _, r := range v {
			*pts = append(*pts, r...)
		}
	case orb.MultiPolygon:
		for _, p := range v {
			for _, r := range p {
				*pts = append(*pts, r...)
			}
		}
	case orb.Collection:
		for _, sub := range v {
			appendGeometry(pts, sub)
		}
	}
}
