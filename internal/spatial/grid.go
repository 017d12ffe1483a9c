// Package spatial provides grid-bucketed spatial hashing, neighborhood key
// enumeration and r-tree indexes over feature collections, plus the
// line-to-boundary extension built on top of them.
package spatial

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// DefaultFuzzyMargin is the fraction of a cell's size within which a vertex
// counts as sitting on the cell boundary and is mirrored into the adjacent
// cell. 0.05 matches a 50 m band on a 1 km grid.
const DefaultFuzzyMargin = 0.05

// GridKey identifies one fixed-size square grid cell. Col and Row are the
// coordinates divided by the grid size and rounded to nearest, so the key is
// a pure function of the coordinate and grid size, and reverses exactly to
// the cell's bounding box.
type GridKey struct {
	Col int
	Row int
}

// String renders the key in its "col:row" wire form.
func (k GridKey) String() string {
	return fmt.Sprintf("%d:%d", k.Col, k.Row)
}

// ParseGridKey parses the "col:row" wire form back into a key.
func ParseGridKey(s string) (GridKey, error) {
	col, row, ok := strings.Cut(s, ":")
	if !ok {
		return GridKey{}, fmt.Errorf("spatial: malformed grid key %q", s)
	}
	c, err := strconv.Atoi(col)
	if err != nil {
		return GridKey{}, fmt.Errorf("spatial: malformed grid key %q: %w", s, err)
	}
	r, err := strconv.Atoi(row)
	if err != nil {
		return GridKey{}, fmt.Errorf("spatial: malformed grid key %q: %w", s, err)
	}
	return GridKey{Col: c, Row: r}, nil
}

// CellBounds reverses a key to the bounding box of its cell at the given
// grid size. The cell is centered on the rounded coordinate.
func (k GridKey) CellBounds(gridSize float64) orb.Bound {
	cx := float64(k.Col) * gridSize
	cy := float64(k.Row) * gridSize
	half := gridSize / 2
	return orb.Bound{
		Min: orb.Point{cx - half, cy - half},
		Max: orb.Point{cx + half, cy + half},
	}
}

// KeyFor returns the grid key of a coordinate at the given grid size.
func KeyFor(x, y, gridSize float64) GridKey {
	return GridKey{
		Col: int(math.Round(x / gridSize)),
		Row: int(math.Round(y / gridSize)),
	}
}

// KeyForPoint returns the grid key of a point at the given grid size.
func KeyForPoint(p orb.Point, gridSize float64) GridKey {
	return KeyFor(p[0], p[1], gridSize)
}

// fuzzyAxis returns the cell index for one coordinate plus, when the
// coordinate sits within margin (a fraction of the cell size) of a cell
// boundary, the adjacent cell index on the other side of that boundary.
func fuzzyAxis(v, gridSize, margin float64) []int {
	idx := int(math.Round(v / gridSize))
	frac := v/gridSize - float64(idx) // in [-0.5, 0.5]
	switch {
	case 0.5-frac <= margin:
		return []int{idx, idx + 1}
	case 0.5+frac <= margin:
		return []int{idx, idx - 1}
	default:
		return []int{idx}
	}
}

// FuzzyKeys returns the 1, 2 or 4 grid keys a point should be bucketed
// under when boundary-adjacent points must also appear in the neighboring
// cell(s): 2 near an edge, 4 near a corner.
func FuzzyKeys(p orb.Point, gridSize, margin float64) []GridKey {
	if margin <= 0 {
		margin = DefaultFuzzyMargin
	}
	cols := fuzzyAxis(p[0], gridSize, margin)
	rows := fuzzyAxis(p[1], gridSize, margin)
	keys := make([]GridKey, 0, len(cols)*len(rows))
	for _, c := range cols {
		for _, r := range rows {
			keys = append(keys, GridKey{Col: c, Row: r})
		}
	}
	return keys
}

// VertexIndex buckets vertex positions of a single geometry by grid cell.
type VertexIndex map[GridKey][]int

// BuildVertexIndex indexes every point by its grid cell. Every input index
// appears in exactly one bucket.
func BuildVertexIndex(points []orb.Point, gridSize float64) VertexIndex {
	idx := make(VertexIndex)
	for i, p := range points {
		key := KeyForPoint(p, gridSize)
		idx[key] = append(idx[key], i)
	}
	return idx
}

// BuildFuzzyVertexIndex indexes every point by its grid cell and, for points
// within margin of a cell boundary, by the adjacent cell(s) as well, so
// boundary-straddling proximity lookups do not miss near neighbors.
func BuildFuzzyVertexIndex(points []orb.Point, gridSize, margin float64) VertexIndex {
	idx := make(VertexIndex)
	for i, p := range points {
		for _, key := range FuzzyKeys(p, gridSize, margin) {
			idx[key] = append(idx[key], i)
		}
	}
	return idx
}
