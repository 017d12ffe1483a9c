package spatial

import (
	"geosupport/internal/geometry"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// segmentEntry is a single boundary segment stored in the r-tree.
type segmentEntry struct {
	a, b orb.Point
	rect rtreego.Rect
}

func (e *segmentEntry) Bounds() rtreego.Rect {
	return e.rect
}

// Boundary indexes the segments of one or more barrier lines so that
// candidate segments for an extension query can be found without scanning
// every segment.
type Boundary struct {
	tree *rtreego.Rtree
	size int
}

// NewBoundary explodes the given lines into segments and indexes them.
func NewBoundary(lines []orb.LineString) *Boundary {
	tree := rtreego.NewTree(2, 25, 50)
	size := 0
	for _, line := range lines {
		for _, seg := range geometry.ExplodeSegments(line) {
			bound := orb.MultiPoint{seg[0], seg[1]}.Bound()
			tree.Insert(&segmentEntry{a: seg[0], b: seg[1], rect: boundToRect(bound)})
			size++
		}
	}
	return &Boundary{tree: tree, size: size}
}

// Size returns the number of indexed segments.
func (b *Boundary) Size() int { return b.size }

// ExtendToIntersections extends each input line by maxDistance in the given
// direction and cuts it at the nearest boundary crossing. Lines that never
// cross the boundary, and lines that cannot be extended (for OPPOSITE that
// means lines with more than two vertices), are returned unchanged.
//
// For AZIMUTH the result runs from the line's first vertex to the
// intersection; for OPPOSITE it runs from the intersection to the line's
// last vertex, keeping vertex order consistent with the original line.
func ExtendToIntersections(lines []orb.LineString, boundary *Boundary, maxDistance float64, dir geometry.Direction) []orb.LineString {
	out := make([]orb.LineString, 0, len(lines))
	for _, line := range lines {
		ext, err := geometry.Extend(line, maxDistance, dir)
		if err != nil || len(ext) < 2 {
			out = append(out, line)
			continue
		}
		start := ext[0]
		end := ext[len(ext)-1]

		bound := orb.MultiPoint{start, end}.Bound()
		var best orb.Point
		bestDist := maxDistance
		found := false
		for _, r := range boundary.tree.SearchIntersect(boundToRect(bound)) {
			seg := r.(*segmentEntry)
			inter, ok := geometry.SegmentIntersection(start, end, seg.a, seg.b)
			if !ok {
				continue
			}
			if d := geometry.Dist(start, inter); d < bestDist {
				best = inter
				bestDist = d
				found = true
			}
		}
		if !found {
			out = append(out, line)
			continue
		}

		if dir == geometry.DirOpposite {
			// ext was flipped before extension; flip back so the cut
			// line keeps the caller's vertex order.
			out = append(out, orb.LineString{best, start})
		} else {
			out = append(out, orb.LineString{start, best})
		}
	}
	return out
}
