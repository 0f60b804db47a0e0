package recommend

type exactMatch struct {
	matched []string
	missing []string
	score   float64
}

// matchExact compares the profile attribute set against one item's attribute
// list. Each item attribute counts as matched on exact set membership or, as a
// fallback, bidirectional substring containment against the profile
// attributes. Items with zero matched attributes report ok=false and are
// excluded from scoring.
func matchExact(attrs attributeSet, item CatalogItem) (exactMatch, bool) {
	matched := make([]string, 0, len(item.Attributes))
	missing := make([]string, 0, len(item.Attributes))

	total := 0
	for _, req := range item.Attributes {
		n := Normalize(req)
		if n == "" {
			continue
		}
		total++
		if attrs.contains(n) || attrs.containsSubstring(n) {
			matched = append(matched, req)
		} else {
			missing = append(missing, req)
		}
	}

	if len(matched) == 0 {
		return exactMatch{}, false
	}
	if total < 1 {
		total = 1
	}

	return exactMatch{
		matched: matched,
		missing: missing,
		score:   float64(len(matched)) / float64(total),
	}, true
}
