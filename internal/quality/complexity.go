package quality

import (
	"geosupport/internal/model"
)

// Default complexity thresholds. Features past these tend to be digitizing
// artifacts or unsplit imports rather than real geometries.
const (
	DefaultMaxVertices = 10000
	DefaultMaxParts    = 50
)

// Complexity flags one feature whose geometry exceeds a threshold.
type Complexity struct {
	ID       string `json:"id"`
	Vertices int    `json:"vertices"`
	Parts    int    `json:"parts"`
}

// FindComplexFeatures returns the features whose vertex or part count
// exceeds the thresholds, in input order. Zero thresholds fall back to the
// defaults.
func FindComplexFeatures(features []*model.Feature, maxVertices, maxParts int) []Complexity {
	if maxVertices <= 0 {
		maxVertices = DefaultMaxVertices
	}
	if maxParts <= 0 {
		maxParts = DefaultMaxParts
	}

	var flagged []Complexity
	for _, f := range features {
		vertices := f.VertexCount()
		parts := f.PartCount()
		if vertices > maxVertices || parts > maxParts {
			flagged = append(flagged, Complexity{ID: f.ID, Vertices: vertices, Parts: parts})
		}
	}
	return flagged
}
