package quality

import (
	"regexp"
	"sort"
	"strings"

	"geosupport/internal/model"
)

// fieldNamePattern is the portable attribute naming convention: lower-case
// letter first, then lower-case letters, digits and underscores.
var fieldNamePattern = regexp.MustCompile(`^[a-z][_a-z0-9]*$`)

// NullOrBlank reports whether an attribute value carries no information:
// nil, or a string that is empty or whitespace-only.
func NullOrBlank(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// FieldStats summarizes one attribute's fill rate across a collection.
type FieldStats struct {
	Name    string `json:"name"`
	Present int    `json:"present"`
	Missing int    `json:"missing"`
	Blank   int    `json:"blank"`
}

// Completeness tallies, per attribute name seen anywhere in the collection,
// how many features carry it, miss it, or carry it blank. Results are
// sorted by name.
func Completeness(features []*model.Feature) []FieldStats {
	stats := make(map[string]*FieldStats)
	for _, f := range features {
		for name := range f.Fields {
			if _, ok := stats[name]; !ok {
				stats[name] = &FieldStats{Name: name}
			}
		}
	}
	for _, f := range features {
		for name, s := range stats {
			v, ok := f.Fields[name]
			switch {
			case !ok:
				s.Missing++
			case NullOrBlank(v):
				s.Blank++
			default:
				s.Present++
			}
		}
	}

	out := make([]FieldStats, 0, len(stats))
	for _, s := range stats {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// AuditFieldNames returns the distinct attribute names that break the
// naming convention, sorted.
func AuditFieldNames(features []*model.Feature) []string {
	bad := make(map[string]struct{})
	for _, f := range features {
		for name := range f.Fields {
			if !fieldNamePattern.MatchString(name) {
				bad[name] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(bad))
	for name := range bad {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// TypeConflict records an attribute whose value type varies across the
// collection.
type TypeConflict struct {
	Name  string   `json:"name"`
	Types []string `json:"types"`
}

// AuditFieldTypes finds attributes that mix value types (null and blank
// values are ignored). Results and their type lists are sorted.
func AuditFieldTypes(features []*model.Feature) []TypeConflict {
	types := make(map[string]map[string]struct{})
	for _, f := range features {
		for name, v := range f.Fields {
			if NullOrBlank(v) {
				continue
			}
			if types[name] == nil {
				types[name] = make(map[string]struct{})
			}
			types[name][typeName(v)] = struct{}{}
		}
	}

	var conflicts []TypeConflict
	for name, seen := range types {
		if len(seen) < 2 {
			continue
		}
		list := make([]string, 0, len(seen))
		for t := range seen {
			list = append(list, t)
		}
		sort.Strings(list)
		conflicts = append(conflicts, TypeConflict{Name: name, Types: list})
	}
	sort.Slice(conflicts, func(i, j int) bool { return conflicts[i].Name < conflicts[j].Name })
	return conflicts
}

// typeName folds the numeric types into one bucket: a column holding 2 and
// 2.5 is numeric, not conflicting.
func typeName(v any) string {
	switch v.(type) {
	case float64, float32, int, int32, int64, uint, uint32, uint64:
		return "number"
	case string:
		return "string"
	case bool:
		return "bool"
	default:
		return "other"
	}
}
