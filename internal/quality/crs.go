package quality

import (
	"sort"

	"geosupport/internal/model"
)

// CRSConflict records features whose coordinate reference system differs
// from the collection's dominant one.
type CRSConflict struct {
	CRS model.CRS `json:"crs"`
	IDs []string  `json:"ids"`
}

// AuditCRS groups features by coordinate system and reports every group
// except the largest. A collection with one consistent CRS yields nothing;
// unknown (zero) CRS values count as their own group.
func AuditCRS(features []*model.Feature) []CRSConflict {
	byCRS := make(map[model.CRS][]string)
	for _, f := range features {
		byCRS[f.CRS] = append(byCRS[f.CRS], f.ID)
	}
	if len(byCRS) < 2 {
		return nil
	}

	var dominant model.CRS
	best := -1
	for crs, ids := range byCRS {
		if len(ids) > best || (len(ids) == best && crs < dominant) {
			dominant = crs
			best = len(ids)
		}
	}

	var conflicts []CRSConflict
	for crs, ids := range byCRS {
		if crs == dominant {
			continue
		}
		conflicts = append(conflicts, CRSConflict{CRS: crs, IDs: ids})
	}
	sort.Slice(conflicts, func(i, j int) bool { return conflicts[i].CRS < conflicts[j].CRS })
	return conflicts
}
