package geometry

import "github.com/paulmach/orb"

// ClipToConvexRing clips a subject ring against a convex clip ring with the
// Sutherland-Hodgman algorithm. The result is a closed ring, or nil when the
// subject lies entirely outside the clip region. The clip ring must be
// convex; concave clip rings produce incorrect output.
func ClipToConvexRing(subject orb.Ring, clip orb.Ring) orb.Ring {
	if len(subject) < 4 || len(clip) < 4 {
		return nil
	}

	clip = ccw(clip)

	// Work on the open vertex list.
	out := make([]orb.Point, len(subject)-1)
	copy(out, subject[:len(subject)-1])

	for i := 1; i < len(clip); i++ {
		a, b := clip[i-1], clip[i]
		in := out
		out = nil
		if len(in) == 0 {
			return nil
		}

		prev := in[len(in)-1]
		prevInside := leftOrOn(a, b, prev)
		for _, cur := range in {
			curInside := leftOrOn(a, b, cur)
			if curInside {
				if !prevInside {
					if pt, ok := lineEdgeIntersection(a, b, prev, cur); ok {
						out = append(out, pt)
					}
				}
				out = append(out, cur)
			} else if prevInside {
				if pt, ok := lineEdgeIntersection(a, b, prev, cur); ok {
					out = append(out, pt)
				}
			}
			prev = cur
			prevInside = curInside
		}
	}

	if len(out) < 3 {
		return nil
	}
	ring := make(orb.Ring, 0, len(out)+1)
	ring = append(ring, out...)
	ring = append(ring, out[0])
	return ring
}

// ccw returns the ring oriented counter-clockwise.
func ccw(ring orb.Ring) orb.Ring {
	if ring.Orientation() == orb.CCW {
		return ring
	}
	rev := make(orb.Ring, len(ring))
	for i, p := range ring {
		rev[len(ring)-1-i] = p
	}
	return rev
}

// leftOrOn reports whether p lies on or to the left of the directed line a->b.
func leftOrOn(a, b, p orb.Point) bool {
	return (b[0]-a[0])*(p[1]-a[1])-(b[1]-a[1])*(p[0]-a[0]) >= 0
}

// lineEdgeIntersection intersects the infinite line through a-b with the
// finite edge prev-cur. Used only where the edge is known to cross the line.
func lineEdgeIntersection(a, b, prev, cur orb.Point) (orb.Point, bool) {
	dx1 := b[0] - a[0]
	dy1 := b[1] - a[1]
	dx2 := cur[0] - prev[0]
	dy2 := cur[1] - prev[1]

	den := dx1*dy2 - dy1*dx2
	if den == 0 {
		return orb.Point{}, false
	}
	s := ((prev[0]-a[0])*dy1 - (prev[1]-a[1])*dx1) / den
	return orb.Point{prev[0] + s*dx2, prev[1] + s*dy2}, true
}
