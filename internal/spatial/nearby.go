package spatial

import "math"

// NearbyKeys enumerates the grid keys around a query coordinate that could
// hold neighbors within minRadius. Candidate coordinates are generated in
// gridSize steps away from the query point, up to maxLatDelta / maxLonDelta
// per axis; their Cartesian product is filtered to offsets whose Euclidean
// length stays under minRadius. The query point's own cell (zero offset) is
// always present. The result is a coarse disk in key space, which lets a
// grid index lookup approximate a radius query without a tree structure.
//
// Keys are built with x=lon, y=lat, matching KeyFor's coordinate order.
func NearbyKeys(lat, lon, maxLatDelta, maxLonDelta, gridSize, minRadius float64) map[GridKey]struct{} {
	if gridSize <= 0 {
		return map[GridKey]struct{}{}
	}

	latSteps := axisIncrements(lat, maxLatDelta, gridSize)
	lonSteps := axisIncrements(lon, maxLonDelta, gridSize)

	keys := make(map[GridKey]struct{})
	for _, candLat := range latSteps {
		for _, candLon := range lonSteps {
			dLat := math.Abs(candLat - lat)
			dLon := math.Abs(candLon - lon)
			if math.Sqrt(dLat*dLat+dLon*dLon) < minRadius {
				keys[KeyFor(candLon, candLat, gridSize)] = struct{}{}
			}
		}
	}
	return keys
}

// axisIncrements walks outward from center in both directions in steps of
// gridSize until the offset reaches maxDelta, including the first value at
// or past the limit.
func axisIncrements(center, maxDelta, gridSize float64) []float64 {
	out := []float64{center}
	if gridSize <= 0 {
		return out
	}
	for _, sign := range []float64{-1, 1} {
		current := center
		for {
			current += sign * gridSize
			out = append(out, current)
			if math.Abs(current-center) >= maxDelta {
				break
			}
		}
	}
	return out
}
