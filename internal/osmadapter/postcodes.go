package osmadapter

import (
	"fmt"
	"sort"

	"cosmogony/internal/postcode"
)

// BuildPostcodes extracts every boundary=postal_code relation from store
// (driver §4.11 step 2, the optional second classification pass over the
// same decoded objects).
func BuildPostcodes(store *ObjectStore) []*postcode.Postcode {
	ids := make([]int64, 0, len(store.Relations))
	for id, rel := range store.Relations {
		if IsPostalCodeRelation(rel) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	codes := make([]*postcode.Postcode, 0, len(ids))
	for _, id := range ids {
		rel := store.Relations[id]
		boundary, ok := BuildBoundary(rel, store)
		if !ok {
			continue
		}
		pc := postcode.FromBoundary(fmt.Sprintf("relation:%d", rel.ID), rel.Tags["postal_code"], boundary)
		if pc != nil {
			codes = append(codes, pc)
		}
	}
	return codes
}
