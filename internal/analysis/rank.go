package analysis

import "sort"

// Rank sorts entities descending by mention count and truncates to max.
// The sort is stable, so ties keep the order entities were first inserted
// in (discovery order). max <= 0 means no truncation.
func Rank(entities []Entity, max int) []Entity {
	out := make([]Entity, 0, len(entities))
	out = append(out, entities...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MentionCount > out[j].MentionCount
	})
	if max > 0 && len(out) > max {
		out = out[:max]
	}
	return out
}
