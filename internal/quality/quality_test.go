package quality

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geosupport/internal/model"
)

func TestFindDuplicates(t *testing.T) {
	features := []*model.Feature{
		{ID: "a", Fields: map[string]any{"name": "Oak St", "lanes": 2}},
		{ID: "b", Fields: map[string]any{"name": "Oak St", "lanes": 2}},
		{ID: "c", Fields: map[string]any{"name": "Elm St", "lanes": 2}},
	}

	groups := FindDuplicates(features, nil, false)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"a", "b"}, groups[0].IDs)
	assert.NotEmpty(t, groups[0].Hash)
}

func TestFindDuplicatesNumericTypesFold(t *testing.T) {
	// An int column and a float column with the same values digest the same.
	features := []*model.Feature{
		{ID: "a", Fields: map[string]any{"lanes": 2}},
		{ID: "b", Fields: map[string]any{"lanes": 2.0}},
	}
	groups := FindDuplicates(features, nil, false)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"a", "b"}, groups[0].IDs)
}

func TestFindDuplicatesWithGeometry(t *testing.T) {
	shared := map[string]any{"name": "Oak St"}
	features := []*model.Feature{
		{ID: "a", Fields: shared, Geometry: orb.Point{1, 2}},
		{ID: "b", Fields: shared, Geometry: orb.Point{1, 2}},
		{ID: "c", Fields: shared, Geometry: orb.Point{9, 9}},
	}

	// Attributes alone make all three identical.
	assert.Len(t, FindDuplicates(features, nil, false), 1)
	assert.Len(t, FindDuplicates(features, nil, false)[0].IDs, 3)

	// Including geometry separates c.
	groups := FindDuplicates(features, nil, true)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"a", "b"}, groups[0].IDs)
}

func TestFindDuplicatesFieldSubset(t *testing.T) {
	features := []*model.Feature{
		{ID: "a", Fields: map[string]any{"name": "Oak St", "surveyor": "jones"}},
		{ID: "b", Fields: map[string]any{"name": "Oak St", "surveyor": "smith"}},
	}

	assert.Empty(t, FindDuplicates(features, nil, false))

	groups := FindDuplicates(features, []string{"name"}, false)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"a", "b"}, groups[0].IDs)
}

func TestNullOrBlank(t *testing.T) {
	assert.True(t, NullOrBlank(nil))
	assert.True(t, NullOrBlank(""))
	assert.True(t, NullOrBlank("   "))
	assert.False(t, NullOrBlank("x"))
	assert.False(t, NullOrBlank(0))
	assert.False(t, NullOrBlank(false))
}

func TestCompleteness(t *testing.T) {
	features := []*model.Feature{
		{ID: "a", Fields: map[string]any{"name": "Oak St", "lanes": 2}},
		{ID: "b", Fields: map[string]any{"name": "  "}},
		{ID: "c", Fields: map[string]any{"lanes": nil}},
	}

	stats := Completeness(features)
	require.Len(t, stats, 2)

	assert.Equal(t, FieldStats{Name: "lanes", Present: 1, Missing: 1, Blank: 1}, stats[0])
	assert.Equal(t, FieldStats{Name: "name", Present: 1, Missing: 1, Blank: 1}, stats[1])
}

func TestAuditFieldNames(t *testing.T) {
	features := []*model.Feature{
		{ID: "a", Fields: map[string]any{"name": 1, "lane_count": 1, "street_2": 1}},
		{ID: "b", Fields: map[string]any{"Name": 1, "2nd_field": 1, "bad-dash": 1}},
	}
	assert.Equal(t, []string{"2nd_field", "Name", "bad-dash"}, AuditFieldNames(features))
}

func TestAuditFieldTypes(t *testing.T) {
	features := []*model.Feature{
		{ID: "a", Fields: map[string]any{"lanes": 2, "name": "Oak St"}},
		{ID: "b", Fields: map[string]any{"lanes": 2.5, "name": true}},
		{ID: "c", Fields: map[string]any{"name": nil}},
	}

	conflicts := AuditFieldTypes(features)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "name", conflicts[0].Name)
	assert.Equal(t, []string{"bool", "string"}, conflicts[0].Types)
}

func TestAuditCRS(t *testing.T) {
	features := []*model.Feature{
		{ID: "a", CRS: model.CRSWGS84},
		{ID: "b", CRS: model.CRSWGS84},
		{ID: "c", CRS: model.CRSUnknown},
	}

	conflicts := AuditCRS(features)
	require.Len(t, conflicts, 1)
	assert.Equal(t, model.CRSUnknown, conflicts[0].CRS)
	assert.Equal(t, []string{"c"}, conflicts[0].IDs)

	assert.Nil(t, AuditCRS(features[:2]))
}

func TestFindComplexFeatures(t *testing.T) {
	big := make(orb.LineString, 20)
	features := []*model.Feature{
		{ID: "simple", Geometry: orb.LineString{{0, 0}, {1, 1}}},
		{ID: "dense", Geometry: big},
	}

	flagged := FindComplexFeatures(features, 10, 0)
	require.Len(t, flagged, 1)
	assert.Equal(t, "dense", flagged[0].ID)
	assert.Equal(t, 20, flagged[0].Vertices)
}

func TestCheckAggregatesCleanRun(t *testing.T) {
	features := []*model.Feature{
		{ID: "a", CRS: model.CRSWGS84, Geometry: orb.Point{1, 2}, Fields: map[string]any{"name": "Oak St"}},
		{ID: "b", CRS: model.CRSWGS84, Geometry: orb.Point{3, 4}, Fields: map[string]any{"name": "Elm St"}},
	}

	report := Check(features, Options{HashGeometry: true})
	assert.Equal(t, 2, report.FeatureCount)
	assert.True(t, report.Clean())
	assert.Len(t, report.FieldStats, 1)
}
