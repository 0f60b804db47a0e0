package recommend

import (
	"sort"

	"github.com/google/uuid"
)

// rankRecords flattens the keyed record map in first-produced order, sorts by
// descending score with a stable sort (ties keep production order), and
// truncates to maxResults.
func rankRecords(records map[uuid.UUID]*MatchRecord, order []uuid.UUID, maxResults int) []MatchRecord {
	out := make([]MatchRecord, 0, len(order))
	for _, id := range order {
		rec, ok := records[id]
		if !ok {
			continue
		}
		out = append(out, *rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})

	if maxResults > 0 && len(out) > maxResults {
		out = out[:maxResults]
	}
	return out
}
