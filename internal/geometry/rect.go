package geometry

import (
	"sort"

	"github.com/paulmach/orb"
)

// Edge is one side of a quadrilateral during bisection. It is a transient
// value and never persisted.
type Edge struct {
	From     orb.Point
	To       orb.Point
	Length   float64
	Midpoint orb.Point
	Long     bool
}

// ringEdges builds the edge list of a closed ring, one edge per consecutive
// vertex pair.
func ringEdges(ring orb.Ring) []Edge {
	edges := make([]Edge, 0, len(ring)-1)
	for i := 1; i < len(ring); i++ {
		from, to := ring[i-1], ring[i]
		edges = append(edges, Edge{
			From:     from,
			To:       to,
			Length:   Dist(from, to),
			Midpoint: Midpoint(from, to),
		})
	}
	return edges
}

// BisectRectangle cuts an approximately rectangular closed ring into two
// halves along the segment joining the midpoints of its two longest edges,
// splitting the long axis evenly. The input must be a closed ring with
// exactly four distinct vertices.
//
// Known limitation: for non-rectangular or non-convex quadrilaterals the
// cut assumes two pairs of roughly equal opposite edges and the result is
// geometrically meaningless. That input domain is undefined, not corrected.
func BisectRectangle(ring orb.Ring) (orb.Ring, orb.Ring, error) {
	if len(ring) != 5 || ring[0] != ring[4] {
		return nil, nil, ErrNotQuad
	}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if ring[i] == ring[j] {
				return nil, nil, ErrNotQuad
			}
		}
	}

	edges := ringEdges(ring)

	// Mark the two longest edges, assumed to be the long sides.
	lengths := make([]float64, 4)
	for i, e := range edges {
		lengths[i] = e.Length
	}
	sort.Float64s(lengths)
	threshold := lengths[2]
	for i := range edges {
		edges[i].Long = edges[i].Length >= threshold
	}

	// Rotate so the first edge is a long one; long and short sides alternate
	// around a rectangle, so a single rotation is always enough.
	if !edges[0].Long {
		edges = []Edge{edges[1], edges[2], edges[3], edges[0]}
	}

	cutA := edges[0].Midpoint
	cutB := edges[2].Midpoint

	halfA := orb.Ring{edges[0].From, cutA, cutB, edges[3].From, edges[0].From}
	halfB := orb.Ring{cutA, edges[1].From, edges[2].From, cutB, cutA}
	return halfA, halfB, nil
}
