package spatial

import (
	"geosupport/internal/model"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// rtreeMinSide pads degenerate bounding boxes (points, axis-parallel
// segments) so they form valid r-tree rectangles.
const rtreeMinSide = 1e-9

// featureEntry wraps a feature for r-tree storage.
type featureEntry struct {
	feature *model.Feature
	rect    rtreego.Rect
}

// Bounds implements the rtreego.Spatial interface.
func (e *featureEntry) Bounds() rtreego.Rect {
	return e.rect
}

// boundToRect converts an orb bounding box to an r-tree rectangle, padding
// zero-size sides.
func boundToRect(b orb.Bound) rtreego.Rect {
	w := b.Max[0] - b.Min[0]
	h := b.Max[1] - b.Min[1]
	if w < rtreeMinSide {
		w = rtreeMinSide
	}
	if h < rtreeMinSide {
		h = rtreeMinSide
	}
	rect, _ := rtreego.NewRect(
		rtreego.Point{b.Min[0], b.Min[1]},
		[]float64{w, h},
	)
	return rect
}

// FeatureIndex is an r-tree over feature bounding boxes for fast spatial
// filtering and nearest-feature queries. Like Index, it is built once over a
// collection and read-only afterwards.
type FeatureIndex struct {
	tree *rtreego.Rtree
	size int
}

// NewFeatureIndex builds the r-tree. Features without geometry are skipped.
func NewFeatureIndex(features []*model.Feature) *FeatureIndex {
	tree := rtreego.NewTree(2, 25, 50)
	size := 0
	for _, f := range features {
		if f.Geometry == nil {
			continue
		}
		tree.Insert(&featureEntry{feature: f, rect: boundToRect(f.Bound())})
		size++
	}
	return &FeatureIndex{tree: tree, size: size}
}

// Size returns the number of indexed features.
func (ix *FeatureIndex) Size() int { return ix.size }

// SearchBound returns all features whose bounding boxes intersect b.
func (ix *FeatureIndex) SearchBound(b orb.Bound) []*model.Feature {
	results := ix.tree.SearchIntersect(boundToRect(b))
	features := make([]*model.Feature, 0, len(results))
	for _, r := range results {
		features = append(features, r.(*featureEntry).feature)
	}
	return features
}

// Nearest returns up to k features whose bounding boxes are closest to p.
func (ix *FeatureIndex) Nearest(p orb.Point, k int) []*model.Feature {
	if k <= 0 {
		return nil
	}
	results := ix.tree.NearestNeighbors(k, rtreego.Point{p[0], p[1]})
	features := make([]*model.Feature, 0, len(results))
	for _, r := range results {
		if r == nil {
			continue
		}
		features = append(features, r.(*featureEntry).feature)
	}
	return features
}
