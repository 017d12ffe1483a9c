package geometry

import (
	"math"

	"github.com/paulmach/orb"
)

// Direction selects which way a line is extended relative to its azimuth.
type Direction int

const (
	// DirAzimuth extends past the line's end point, along the start-to-end bearing.
	DirAzimuth Direction = iota
	// DirOpposite extends past the line's start point, against the bearing.
	DirOpposite
)

// Azimuth returns the compass bearing in degrees [0, 360) from the line's
// first point to its last point, measured clockwise from north. Note the
// swapped atan2 argument order: atan2(dx, dy) expresses a bearing rather
// than a mathematical angle.
func Azimuth(line orb.LineString) float64 {
	first := line[0]
	last := line[len(line)-1]
	deltaX := last[0] - first[0]
	deltaY := last[1] - first[1]
	deg := math.Atan2(deltaX, deltaY) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}

// Flip reverses the vertex order of a polyline of any length.
func Flip(line orb.LineString) orb.LineString {
	flipped := make(orb.LineString, len(line))
	for i, pt := range line {
		flipped[len(line)-1-i] = pt
	}
	return flipped
}

// FlipSegment reverses the direction of a simple two-point segment.
// Longer polylines are rejected: reversal with endpoint semantics is only
// defined for segments.
func FlipSegment(line orb.LineString) (orb.LineString, error) {
	if len(line) != 2 {
		return nil, ErrNotSegment
	}
	return orb.LineString{line[1], line[0]}, nil
}

// Extend projects a line's end point outward by distance units along its
// azimuth and returns the new two-point segment from the line's first point
// to the projected end. With DirOpposite the segment is flipped first and
// extended along the reverse azimuth, so the former start point is pushed
// outward; DirOpposite requires a two-point segment. A negative distance
// pulls the end point back toward the start.
func Extend(line orb.LineString, distance float64, dir Direction) (orb.LineString, error) {
	if len(line) < 2 {
		return nil, ErrTooFewPoints
	}
	azimuth := Azimuth(line)
	if dir == DirOpposite {
		azimuth = math.Mod(azimuth+180, 360)
		flipped, err := FlipSegment(line)
		if err != nil {
			return nil, err
		}
		line = flipped
	}
	rad := azimuth * math.Pi / 180
	deltaX := distance * math.Sin(rad)
	deltaY := distance * math.Cos(rad)
	start := line[0]
	end := line[len(line)-1]
	return orb.LineString{
		start,
		{end[0] + deltaX, end[1] + deltaY},
	}, nil
}

// LineOnAzimuth builds a two-point segment of the given length starting at
// start and heading along the azimuth (degrees clockwise from north).
func LineOnAzimuth(start orb.Point, distance, azimuth float64) orb.LineString {
	rad := azimuth * math.Pi / 180
	end := orb.Point{
		start[0] + distance*math.Sin(rad),
		start[1] + distance*math.Cos(rad),
	}
	return orb.LineString{start, end}
}

// SegmentIntersection computes the crossing point of the finite segments
// p1-p2 and p3-p4 by solving the 2x2 system of their implicit line
// equations. It reports ok=false for parallel or collinear segments and for
// crossings that are not strictly interior to both segments: touching
// endpoints are not intersections.
func SegmentIntersection(p1, p2, p3, p4 orb.Point) (orb.Point, bool) {
	// A*x + B*y = C form for both lines.
	a1 := p2[1] - p1[1]
	b1 := p1[0] - p2[0]
	c1 := a1*p1[0] + b1*p1[1]

	a2 := p4[1] - p3[1]
	b2 := p3[0] - p4[0]
	c2 := a2*p3[0] + b2*p3[1]

	det := a1*b2 - a2*b1
	if det == 0 {
		return orb.Point{}, false
	}
	x := (b2*c1 - b1*c2) / det
	y := (a1*c2 - a2*c1) / det
	pt := orb.Point{x, y}

	if !strictlyWithin(pt, p1, p2) || !strictlyWithin(pt, p3, p4) {
		return orb.Point{}, false
	}
	return pt, true
}

// strictlyWithin tests that pt lies inside the open bounding interval of the
// segment a-b on every axis the segment actually spans. Axes where the
// segment is degenerate (an axis-parallel segment) are skipped, since the
// solved coordinate already lies on that line exactly.
func strictlyWithin(pt, a, b orb.Point) bool {
	const eps = 1e-12
	for axis := 0; axis < 2; axis++ {
		lo := math.Min(a[axis], b[axis])
		hi := math.Max(a[axis], b[axis])
		if hi-lo <= eps {
			continue
		}
		if pt[axis] <= lo || pt[axis] >= hi {
			return false
		}
	}
	return true
}

// ExplodeSegments splits a polyline into its individual two-point segments,
// in order. A polyline of n vertices yields n-1 segments.
func ExplodeSegments(line orb.LineString) []orb.LineString {
	if len(line) < 2 {
		return nil
	}
	segments := make([]orb.LineString, 0, len(line)-1)
	for i := 1; i < len(line); i++ {
		segments = append(segments, orb.LineString{line[i-1], line[i]})
	}
	return segments
}
