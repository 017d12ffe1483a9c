// Package source loads feature collections from external formats into the
// in-memory feature model. Sources are pull-based iterators so large inputs
// can be streamed without materializing the whole collection.
package source

import (
	"io"

	"geosupport/internal/model"
)

// FeatureSource yields features one at a time. Next returns io.EOF when the
// source is exhausted.
type FeatureSource interface {
	Next() (*model.Feature, error)
}

// ReadAll drains a source into a slice.
func ReadAll(src FeatureSource) ([]*model.Feature, error) {
	var features []*model.Feature
	for {
		f, err := src.Next()
		if err == io.EOF {
			return features, nil
		}
		if err != nil {
			return nil, err
		}
		features = append(features, f)
	}
}

// SliceSource adapts an in-memory slice to the FeatureSource interface.
type SliceSource struct {
	features []*model.Feature
	pos      int
}

// NewSliceSource wraps an existing slice. The slice is not copied.
func NewSliceSource(features []*model.Feature) *SliceSource {
	return &SliceSource{features: features}
}

func (s *SliceSource) Next() (*model.Feature, error) {
	if s.pos >= len(s.features) {
		return nil, io.EOF
	}
	f := s.features[s.pos]
	s.pos++
	return f, nil
}
