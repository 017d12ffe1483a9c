package geometry

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
)

// BoundingRect is a minimum-area rotated rectangle around a polygon ring.
// Length is the long side, Width the short side.
type BoundingRect struct {
	Ring   orb.Ring
	Length float64
	Width  float64
}

// Ratio returns the length-to-width elongation of the rectangle. A width of
// zero (collinear input) yields +Inf.
func (r BoundingRect) Ratio() float64 {
	if r.Width == 0 {
		return math.Inf(1)
	}
	return r.Length / r.Width
}

// MinimumBoundingRectangle computes the smallest-area rectangle, at any
// rotation, enclosing the ring. It walks the convex hull with rotating
// calipers: the minimum-area rectangle always has one side collinear with a
// hull edge.
func MinimumBoundingRectangle(ring orb.Ring) (BoundingRect, error) {
	hull := convexHull(ring)
	if len(hull) < 3 {
		return BoundingRect{}, ErrTooFewPoints
	}

	best := BoundingRect{}
	bestArea := math.Inf(1)

	for i := 0; i < len(hull); i++ {
		a := hull[i]
		b := hull[(i+1)%len(hull)]
		ux, uy := b[0]-a[0], b[1]-a[1]
		norm := math.Hypot(ux, uy)
		if norm == 0 {
			continue
		}
		ux /= norm
		uy /= norm
		// Perpendicular axis.
		vx, vy := -uy, ux

		minU, maxU := math.Inf(1), math.Inf(-1)
		minV, maxV := math.Inf(1), math.Inf(-1)
		for _, p := range hull {
			u := (p[0]-a[0])*ux + (p[1]-a[1])*uy
			v := (p[0]-a[0])*vx + (p[1]-a[1])*vy
			minU = math.Min(minU, u)
			maxU = math.Max(maxU, u)
			minV = math.Min(minV, v)
			maxV = math.Max(maxV, v)
		}

		w := maxU - minU
		h := maxV - minV
		area := w * h
		if area >= bestArea {
			continue
		}
		bestArea = area

		corner := func(u, v float64) orb.Point {
			return orb.Point{
				a[0] + u*ux + v*vx,
				a[1] + u*uy + v*vy,
			}
		}
		c1 := corner(minU, minV)
		c2 := corner(maxU, minV)
		c3 := corner(maxU, maxV)
		c4 := corner(minU, maxV)
		best = BoundingRect{
			Ring:   orb.Ring{c1, c2, c3, c4, c1},
			Length: math.Max(w, h),
			Width:  math.Min(w, h),
		}
	}

	if math.IsInf(bestArea, 1) {
		return BoundingRect{}, ErrTooFewPoints
	}
	return best, nil
}

// convexHull computes the convex hull of the points with Andrew's monotone
// chain, returned counter-clockwise without a closing point.
func convexHull(pts []orb.Point) []orb.Point {
	uniq := make([]orb.Point, 0, len(pts))
	seen := make(map[orb.Point]struct{}, len(pts))
	for _, p := range pts {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		uniq = append(uniq, p)
	}
	if len(uniq) < 3 {
		return uniq
	}

	sort.Slice(uniq, func(i, j int) bool {
		if uniq[i][0] != uniq[j][0] {
			return uniq[i][0] < uniq[j][0]
		}
		return uniq[i][1] < uniq[j][1]
	})

	cross := func(o, a, b orb.Point) float64 {
		return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
	}

	var lower []orb.Point
	for _, p := range uniq {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	var upper []orb.Point
	for i := len(uniq) - 1; i >= 0; i-- {
		p := uniq[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}
