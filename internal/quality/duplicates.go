package quality

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/paulmach/orb/encoding/wkt"

	"geosupport/internal/model"
)

// DuplicateGroup lists the IDs of features that hash to the same content.
type DuplicateGroup struct {
	Hash string   `json:"hash"`
	IDs  []string `json:"ids"`
}

// FindDuplicates groups features whose selected attributes (and optionally
// geometry) are identical. Only groups with two or more members are
// reported, ordered by first occurrence in the input.
func FindDuplicates(features []*model.Feature, fields []string, hashGeometry bool) []DuplicateGroup {
	byHash := make(map[uint64][]string)
	var order []uint64
	for _, f := range features {
		h := hashFeature(f, fields, hashGeometry)
		if _, seen := byHash[h]; !seen {
			order = append(order, h)
		}
		byHash[h] = append(byHash[h], f.ID)
	}

	var groups []DuplicateGroup
	for _, h := range order {
		ids := byHash[h]
		if len(ids) < 2 {
			continue
		}
		groups = append(groups, DuplicateGroup{
			Hash: strconv.FormatUint(h, 16),
			IDs:  ids,
		})
	}
	return groups
}

// hashFeature digests a feature's attribute values in deterministic field
// order so map iteration order cannot perturb the hash.
func hashFeature(f *model.Feature, fields []string, hashGeometry bool) uint64 {
	names := fields
	if len(names) == 0 {
		names = make([]string, 0, len(f.Fields))
		for name := range f.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
	}

	digest := xxhash.New()
	for _, name := range names {
		digest.WriteString(name)
		digest.WriteString("=")
		digest.WriteString(canonicalValue(f.Fields[name]))
		digest.WriteString(";")
	}
	if hashGeometry && f.Geometry != nil {
		digest.WriteString(wkt.MarshalString(f.Geometry))
	}
	return digest.Sum64()
}

// canonicalValue renders an attribute value in a type-stable text form:
// 2 (int) and 2.0 (float64) digest identically.
func canonicalValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "<null>"
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 64)
	case int:
		return strconv.FormatFloat(float64(val), 'f', -1, 64)
	case int64:
		return strconv.FormatFloat(float64(val), 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
