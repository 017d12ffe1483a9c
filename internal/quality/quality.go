// Package quality runs data-quality checks over feature collections:
// duplicate detection, attribute completeness, field-name and field-type
// audits, coordinate-system consistency and geometry complexity.
package quality

import (
	"geosupport/internal/model"
)

// Options tunes which checks run and their thresholds.
type Options struct {
	// Fields restricts duplicate hashing to the named attributes. Empty
	// hashes every attribute.
	Fields []string `json:"fields"`
	// HashGeometry includes the geometry in the duplicate hash.
	HashGeometry bool `json:"hash_geometry"`
	// MaxVertices flags features with more vertices. Zero means
	// DefaultMaxVertices.
	MaxVertices int `json:"max_vertices"`
	// MaxParts flags multi-part features with more parts. Zero means
	// DefaultMaxParts.
	MaxParts int `json:"max_parts"`
}

// Report aggregates the findings of a full check run.
type Report struct {
	FeatureCount    int              `json:"feature_count"`
	DuplicateGroups []DuplicateGroup `json:"duplicate_groups,omitempty"`
	FieldStats      []FieldStats     `json:"field_stats,omitempty"`
	BadFieldNames   []string         `json:"bad_field_names,omitempty"`
	TypeConflicts   []TypeConflict   `json:"type_conflicts,omitempty"`
	CRSConflicts    []CRSConflict    `json:"crs_conflicts,omitempty"`
	ComplexFeatures []Complexity     `json:"complex_features,omitempty"`
}

// Clean reports whether the run found nothing to flag.
func (r *Report) Clean() bool {
	return len(r.DuplicateGroups) == 0 &&
		len(r.BadFieldNames) == 0 &&
		len(r.TypeConflicts) == 0 &&
		len(r.CRSConflicts) == 0 &&
		len(r.ComplexFeatures) == 0
}

// Check runs every audit over the collection and aggregates the findings.
func Check(features []*model.Feature, opts Options) *Report {
	report := &Report{FeatureCount: len(features)}
	report.DuplicateGroups = FindDuplicates(features, opts.Fields, opts.HashGeometry)
	report.FieldStats = Completeness(features)
	report.BadFieldNames = AuditFieldNames(features)
	report.TypeConflicts = AuditFieldTypes(features)
	report.CRSConflicts = AuditCRS(features)
	report.ComplexFeatures = FindComplexFeatures(features, opts.MaxVertices, opts.MaxParts)
	return report
}
