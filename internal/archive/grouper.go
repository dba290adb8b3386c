package archive

// MediaGroup clusters records by provenance rather than by category. Photo
// and video records are primary; everything else from the same origin is
// related material.
type MediaGroup struct {
	GroupKey     string             `json:"group_key"`
	PrimaryItems []NormalizedRecord `json:"primary_items"`
	RelatedItems []NormalizedRecord `json:"related_items"`
}

// GroupMedia groups the merged result set by creator, falling back to the
// record's source name and finally to "Unknown". Group order follows first
// appearance in the fixed category ordering, so the grouping is
// deterministic for a given aggregate result.
func GroupMedia(result *AggregateResult) []MediaGroup {
	var order []string
	groups := make(map[string]*MediaGroup)

	for _, category := range result.CategoryOrder {
		bucket, ok := result.Buckets[category]
		if !ok {
			continue
		}
		for i := range bucket.Items {
			rec := bucket.Items[i]
			key := groupKey(&rec)

			group, ok := groups[key]
			if !ok {
				group = &MediaGroup{GroupKey: key}
				groups[key] = group
				order = append(order, key)
			}

			if isPrimaryMedia(rec.Type) {
				group.PrimaryItems = append(group.PrimaryItems, rec)
			} else {
				group.RelatedItems = append(group.RelatedItems, rec)
			}
		}
	}

	grouped := make([]MediaGroup, 0, len(order))
	for _, key := range order {
		grouped = append(grouped, *groups[key])
	}
	return grouped
}

func groupKey(rec *NormalizedRecord) string {
	if rec.Creator != "" {
		return rec.Creator
	}
	if rec.Media != nil && rec.Media.Source.Name != "" {
		return rec.Media.Source.Name
	}
	return "Unknown"
}

func isPrimaryMedia(category string) bool {
	return category == "Photograph" || category == "VideoObject"
}
