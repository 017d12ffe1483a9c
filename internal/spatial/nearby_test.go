package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNearbyKeys(t *testing.T) {
	// 0.01-degree grid around (49.0, -123.0); the 0.013 radius keeps only
	// the center cell and its four edge-adjacent neighbors (the diagonal
	// neighbors sit sqrt(2)*0.01 away).
	keys := NearbyKeys(49.0, -123.0, 0.02, 0.03, 0.01, 0.013)

	want := []GridKey{
		{Col: -12300, Row: 4900},
		{Col: -12299, Row: 4900},
		{Col: -12301, Row: 4900},
		{Col: -12300, Row: 4901},
		{Col: -12300, Row: 4899},
	}
	assert.Len(t, keys, len(want))
	for _, k := range want {
		assert.Contains(t, keys, k)
	}
}

func TestNearbyKeysAlwaysIncludesOwnCell(t *testing.T) {
	keys := NearbyKeys(10.004, 20.007, 0.0, 0.0, 0.01, 1e-9)
	assert.Contains(t, keys, KeyFor(20.007, 10.004, 0.01))
}

func TestNearbyKeysRadiusExcludesDistantCells(t *testing.T) {
	keys := NearbyKeys(49.0, -123.0, 0.05, 0.05, 0.01, 0.013)
	assert.NotContains(t, keys, GridKey{Col: -12300, Row: 4902})
	assert.NotContains(t, keys, GridKey{Col: -12298, Row: 4900})
}
