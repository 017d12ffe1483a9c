package geometry

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
)

// DefaultMaxReduceIterations bounds the reduction loop. Each iteration cuts
// the bounding rectangle's long axis in half, so elongation shrinks
// geometrically and well-formed inputs converge in a handful of passes; the
// cap exists for degenerate inputs where that convergence is not guaranteed.
const DefaultMaxReduceIterations = 48

var (
	// ErrNoReferencePoint is returned when neither half of a split still
	// contains one of the supplied reference points.
	ErrNoReferencePoint = errors.New("geometry: no half contains a reference point")

	// ErrReduceDiverged is returned when the iteration cap is reached before
	// the elongation ratio drops below the threshold.
	ErrReduceDiverged = errors.New("geometry: polygon reduction did not converge")
)

// ReduceOptions tunes the reduction loop.
type ReduceOptions struct {
	// MaxIterations caps the number of splits. Zero means
	// DefaultMaxReduceIterations.
	MaxIterations int
}

// Reduce repeatedly shortens an elongated polygon ring until the
// length-to-width ratio of its minimum bounding rectangle drops below
// reductionRatio. Each pass bisects the bounding rectangle across its long
// axis, clips the ring against both halves and keeps the half that still
// contains at least one of the reference points.
func Reduce(ring orb.Ring, reductionRatio float64, refPoints []orb.Point, opts *ReduceOptions) (orb.Ring, error) {
	if len(ring) < 4 {
		return nil, ErrTooFewPoints
	}
	if len(refPoints) == 0 {
		return nil, ErrNoReferencePoint
	}
	maxIter := DefaultMaxReduceIterations
	if opts != nil && opts.MaxIterations > 0 {
		maxIter = opts.MaxIterations
	}

	current := ring
	for iter := 0; iter < maxIter; iter++ {
		mbr, err := MinimumBoundingRectangle(current)
		if err != nil {
			return nil, fmt.Errorf("bounding rectangle: %w", err)
		}
		if mbr.Ratio() < reductionRatio {
			return current, nil
		}

		halfA, halfB, err := BisectRectangle(mbr.Ring)
		if err != nil {
			return nil, fmt.Errorf("bisecting bounding rectangle: %w", err)
		}

		kept := pickHalf(current, halfA, refPoints)
		if kept == nil {
			kept = pickHalf(current, halfB, refPoints)
		}
		if kept == nil {
			return nil, ErrNoReferencePoint
		}
		current = kept
	}
	return nil, ErrReduceDiverged
}

// pickHalf clips the ring against one rectangle half and returns the clipped
// region if it contains a reference point, nil otherwise.
func pickHalf(ring orb.Ring, half orb.Ring, refPoints []orb.Point) orb.Ring {
	clipped := ClipToConvexRing(ring, half)
	if clipped == nil {
		return nil
	}
	for _, pt := range refPoints {
		if PointInPolygon(orb.Polygon{clipped}, pt) {
			return clipped
		}
	}
	return nil
}
