package postgres

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/paulmach/orb/encoding/wkt"
	"gorm.io/gorm"

	"geosupport/internal/model"
)

// FeaturePG is the GORM model for a persisted feature. Geometry is stored
// as WKT text, attributes as a JSON document.
type FeaturePG struct {
	ID       string `gorm:"primaryKey"`
	CRS      int    `gorm:"not null"`
	Geometry string `gorm:"type:text"`
	Fields   string `gorm:"type:jsonb"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// FromFeature converts an in-memory feature to its persisted form.
func FromFeature(f *model.Feature) (*FeaturePG, error) {
	geomText := ""
	if f.Geometry != nil {
		geomText = wkt.MarshalString(f.Geometry)
	}

	fieldsJSON := "{}"
	if len(f.Fields) > 0 {
		data, err := json.Marshal(f.Fields)
		if err != nil {
			return nil, fmt.Errorf("failed to encode feature fields: %w", err)
		}
		fieldsJSON = string(data)
	}

	return &FeaturePG{
		ID:       f.ID,
		CRS:      int(f.CRS),
		Geometry: geomText,
		Fields:   fieldsJSON,
	}, nil
}

// ToFeature converts a persisted row back to the in-memory form.
func (p *FeaturePG) ToFeature() (*model.Feature, error) {
	f := &model.Feature{
		ID:        p.ID,
		CRS:       model.CRS(p.CRS),
		UpdatedAt: p.UpdatedAt,
	}

	if p.Geometry != "" {
		geom, err := wkt.Unmarshal(p.Geometry)
		if err != nil {
			return nil, fmt.Errorf("failed to decode feature geometry: %w", err)
		}
		f.Geometry = geom
	}

	if p.Fields != "" && p.Fields != "{}" {
		if err := json.Unmarshal([]byte(p.Fields), &f.Fields); err != nil {
			return nil, fmt.Errorf("failed to decode feature fields: %w", err)
		}
	}

	return f, nil
}
