// Package geometry contains plane-geometry operations on orb value types:
// line bearings and extension, segment intersection, rectangle bisection,
// minimum bounding rectangles and recursive polygon reduction.
//
// All operations are synchronous, allocate their results, and never modify
// their inputs. Degenerate geometry (parallel segments, zero-length lines)
// is reported through ok/empty results; invalid input is reported through
// errors so caller bugs fail loudly.
package geometry

import (
	"errors"
	"math"

	"github.com/paulmach/orb"
)

var (
	// ErrNotSegment is returned when an operation defined only for simple
	// two-point segments receives a longer polyline.
	ErrNotSegment = errors.New("geometry: line is not a two-point segment")

	// ErrNotQuad is returned when a rectangle operation receives a ring
	// without exactly four distinct vertices.
	ErrNotQuad = errors.New("geometry: ring is not a four-vertex quadrilateral")

	// ErrTooFewPoints is returned for inputs below the minimum vertex count.
	ErrTooFewPoints = errors.New("geometry: not enough points")
)

// Dist returns the Cartesian distance between two points.
func Dist(a, b orb.Point) float64 {
	return math.Hypot(b[0]-a[0], b[1]-a[1])
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b orb.Point) orb.Point {
	return MidpointFractional(a, b, 0.5)
}

// MidpointFractional returns the point located at the given fraction of the
// way from a to b. A fraction of 0.1 lands 10% along the segment from a.
func MidpointFractional(a, b orb.Point, fraction float64) orb.Point {
	return orb.Point{
		a[0] + (b[0]-a[0])*fraction,
		a[1] + (b[1]-a[1])*fraction,
	}
}

// IsClosed reports whether a polyline starts and ends on the same coordinate.
func IsClosed(line orb.LineString) bool {
	if len(line) < 2 {
		return false
	}
	return line[0] == line[len(line)-1]
}

// RingToLine converts a closed ring to a polyline with the same vertex order.
func RingToLine(ring orb.Ring) orb.LineString {
	line := make(orb.LineString, len(ring))
	copy(line, ring)
	return line
}

// PolygonToLines decomposes a polygon into one closed polyline per ring.
// The outer ring comes first, followed by any holes.
func PolygonToLines(p orb.Polygon) []orb.LineString {
	lines := make([]orb.LineString, 0, len(p))
	for _, ring := range p {
		lines = append(lines, RingToLine(ring))
	}
	return lines
}

// FromCoords builds a geometry from a bare coordinate list: a single
// coordinate yields a Point, a closed sequence yields a single-ring Polygon,
// anything else yields a LineString. Multipart geometry is not inferred.
func FromCoords(coords []orb.Point) (orb.Geometry, error) {
	switch {
	case len(coords) == 0:
		return nil, ErrTooFewPoints
	case len(coords) == 1:
		return coords[0], nil
	case coords[0] == coords[len(coords)-1] && len(coords) >= 4:
		ring := make(orb.Ring, len(coords))
		copy(ring, coords)
		return orb.Polygon{ring}, nil
	default:
		line := make(orb.LineString, len(coords))
		copy(line, coords)
		return line, nil
	}
}

// PointInPolygon reports whether a point falls inside a polygon using an
// even-odd ray cast against every ring, so points inside holes are outside.
func PointInPolygon(polygon orb.Polygon, point orb.Point) bool {
	inside := false
	for _, ring := range polygon {
		if pointInRing(ring, point) {
			inside = !inside
		}
	}
	return inside
}

func pointInRing(ring orb.Ring, p orb.Point) bool {
	inside := false
	n := len(ring)
	if n < 3 {
		return false
	}
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := ring[i], ring[j]
		if (a[1] > p[1]) != (b[1] > p[1]) &&
			p[0] < (b[0]-a[0])*(p[1]-a[1])/(b[1]-a[1])+a[0] {
			inside = !inside
		}
	}
	return inside
}
