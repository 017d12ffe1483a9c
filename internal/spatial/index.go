package spatial

import (
	"errors"
	"fmt"

	"geosupport/internal/model"

	"github.com/paulmach/orb"
)

// ErrTooManyFeatures is returned when an index build exceeds its feature cap.
var ErrTooManyFeatures = errors.New("spatial: feature count exceeds index limit")

// DefaultMaxIndexFeatures bounds memory for a single index build.
const DefaultMaxIndexFeatures = 1_000_000

// IndexOptions tunes a feature index build.
type IndexOptions struct {
	// GridSize is the cell size in coordinate units. Required.
	GridSize float64
	// FuzzyMargin, when positive, mirrors boundary-adjacent vertices into
	// neighboring cells (see FuzzyKeys). Zero disables the fuzzy inserts.
	FuzzyMargin float64
	// MaxFeatures caps the build. Zero means DefaultMaxIndexFeatures.
	MaxFeatures int
}

// Index maps grid cells to the feature vertices that fall in them. It is
// built once over a collection, read-only afterwards, and meant to be
// discarded rather than updated: the lifecycle is build, query, drop.
type Index struct {
	gridSize float64
	cells    map[GridKey]map[string][]int
	features int
	vertices int
}

// BuildIndex buckets every vertex of every feature by grid cell.
func BuildIndex(features []*model.Feature, opts IndexOptions) (*Index, error) {
	if opts.GridSize <= 0 {
		return nil, fmt.Errorf("spatial: invalid grid size %v", opts.GridSize)
	}
	maxFeatures := opts.MaxFeatures
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxIndexFeatures
	}
	if len(features) > maxFeatures {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyFeatures, len(features), maxFeatures)
	}

	idx := &Index{
		gridSize: opts.GridSize,
		cells:    make(map[GridKey]map[string][]int),
	}
	for _, f := range features {
		idx.features++
		for i, p := range f.Points() {
			idx.vertices++
			if opts.FuzzyMargin > 0 {
				for _, key := range FuzzyKeys(p, opts.GridSize, opts.FuzzyMargin) {
					idx.insert(key, f.ID, i)
				}
			} else {
				idx.insert(KeyForPoint(p, opts.GridSize), f.ID, i)
			}
		}
	}
	return idx, nil
}

func (x *Index) insert(key GridKey, id string, vertex int) {
	cell := x.cells[key]
	if cell == nil {
		cell = make(map[string][]int)
		x.cells[key] = cell
	}
	cell[id] = append(cell[id], vertex)
}

// GridSize returns the cell size the index was built with.
func (x *Index) GridSize() float64 { return x.gridSize }

// FeatureCount returns the number of features indexed.
func (x *Index) FeatureCount() int { return x.features }

// VertexCount returns the number of vertices indexed, before any fuzzy
// duplication.
func (x *Index) VertexCount() int { return x.vertices }

// Lookup returns the feature-to-vertex-positions mapping for one cell, or
// nil for an empty cell. The returned map is shared with the index and must
// not be modified.
func (x *Index) Lookup(key GridKey) map[string][]int {
	return x.cells[key]
}

// LookupPoint returns the cell contents for the cell containing p.
func (x *Index) LookupPoint(p orb.Point) map[string][]int {
	return x.Lookup(KeyForPoint(p, x.gridSize))
}

// FeatureIDsNear collects the distinct feature IDs found in the given cells.
func (x *Index) FeatureIDsNear(keys map[GridKey]struct{}) []string {
	seen := make(map[string]struct{})
	var ids []string
	for key := range keys {
		for id := range x.cells[key] {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}
