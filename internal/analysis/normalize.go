package analysis

import "strings"

// Normalize lowercases every entity name in the batch and drops entities
// whose name is empty after trimming. No other transformation: no synonym
// folding, no stemming. Idempotent.
func Normalize(br BatchResult) BatchResult {
	br.FoodItems = normalizeEntities(br.FoodItems)
	br.Drinks = normalizeEntities(br.Drinks)
	br.Aspects = normalizeEntities(br.Aspects)
	return br
}

func normalizeEntities(in []Entity) []Entity {
	out := in[:0]
	for _, e := range in {
		e.Name = strings.ToLower(strings.TrimSpace(e.Name))
		if e.Name == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}
