package recommend

import (
	"github.com/google/uuid"
)

// combine merges the semantic hits into the keyed record map. Items already
// matched exactly are re-blended and become hybrid; items found only by the
// semantic pass get a new record with the semantic-only confidence discount.
// Hits are processed in the index's own ranking order so the first-produced
// order of new records is deterministic. Returns the updated insertion order.
func (e *Engine) combine(
	records map[uuid.UUID]*MatchRecord,
	order []uuid.UUID,
	hits []SimilarityHit,
	items map[uuid.UUID]CatalogItem,
	attrs attributeSet,
) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(hits))
	for _, h := range hits {
		if h.ItemID == uuid.Nil {
			continue
		}
		if _, dup := seen[h.ItemID]; dup {
			continue
		}
		seen[h.ItemID] = struct{}{}

		sim := similarityFromDistance(h.Distance)

		if rec, ok := records[h.ItemID]; ok {
			s := sim
			rec.SemanticSimilarity = &s
			rec.MatchScore = capScore(e.weights.ExactBlend*rec.MatchScore + e.weights.SemanticBlend*sim)
			rec.MatchType = MatchHybrid
			continue
		}

		item, ok := items[h.ItemID]
		if !ok {
			// The index named an item outside the fetched catalog slice.
			continue
		}

		matched, missing := semanticAttributeMatch(attrs, item)
		s := sim
		records[item.ID] = &MatchRecord{
			ItemID:             item.ID,
			Item:               item,
			MatchedAttributes:  matched,
			MissingAttributes:  missing,
			MatchScore:         capScore(sim * e.weights.SemanticOnlyFactor),
			MatchType:          MatchSemantic,
			SemanticSimilarity: &s,
		}
		order = append(order, item.ID)
	}
	return order
}

// semanticAttributeMatch is the best-effort secondary pass that gives
// semantic-only records a lexical explanation: a substring-only comparison of
// the item's attributes against the profile attribute set. The matched list
// may legitimately be empty; it is always non-nil.
func semanticAttributeMatch(attrs attributeSet, item CatalogItem) (matched, missing []string) {
	matched = make([]string, 0, len(item.Attributes))
	missing = make([]string, 0, len(item.Attributes))
	for _, req := range item.Attributes {
		n := Normalize(req)
		if n == "" {
			continue
		}
		if attrs.containsSubstring(n) {
			matched = append(matched, req)
		} else {
			missing = append(missing, req)
		}
	}
	return matched, missing
}
