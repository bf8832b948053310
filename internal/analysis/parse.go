package analysis

import (
	"fmt"
	"strings"

	"menulens/internal/util/jsonutil"
)

// StripFences removes Markdown code-fence markers the model sometimes wraps
// JSON output in.
func StripFences(raw string) string {
	raw = strings.ReplaceAll(raw, "```json", "")
	raw = strings.ReplaceAll(raw, "```", "")
	return strings.TrimSpace(raw)
}

// DecodeBatch strips fences and decodes raw model output into a BatchResult.
// A missing key decodes as an empty list. A decode failure is recoverable:
// the caller logs it, skips the batch, and continues the run.
// Names are NOT normalized here; see Normalize.
func DecodeBatch(raw string) (BatchResult, error) {
	cleaned := StripFences(raw)
	if cleaned == "" {
		return BatchResult{}, fmt.Errorf("decode batch: empty response")
	}
	var out BatchResult
	if err := jsonutil.UnmarshalFlex([]byte(cleaned), &out); err != nil {
		return BatchResult{}, fmt.Errorf("decode batch: %w", err)
	}
	return out, nil
}

// AttachReviewText fills each attribution's review text from the batch the
// indices came out of. Refs whose index falls outside the batch window are
// dropped (the model cited a review it was never shown).
func AttachReviewText(br BatchResult, b Batch) BatchResult {
	br.FoodItems = attachEntities(br.FoodItems, b)
	br.Drinks = attachEntities(br.Drinks, b)
	br.Aspects = attachEntities(br.Aspects, b)
	return br
}

func attachEntities(in []Entity, b Batch) []Entity {
	for i := range in {
		kept := in[i].RelatedReviews[:0]
		for _, ref := range in[i].RelatedReviews {
			local := ref.ReviewIndex - b.Start
			if local < 0 || local >= len(b.Reviews) {
				continue
			}
			ref.ReviewText = b.Reviews[local]
			kept = append(kept, ref)
		}
		in[i].RelatedReviews = kept
	}
	return in
}
