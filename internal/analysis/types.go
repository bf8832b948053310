package analysis

// ReviewRef links an entity back to the review that mentioned it.
// ReviewIndex is absolute over the full input list, not per-batch.
type ReviewRef struct {
	ReviewIndex      int    `json:"review_index"`
	ReviewText       string `json:"review_text"`
	SentimentContext string `json:"sentiment_context,omitempty"`
}

// Entity is a discovered food item, drink, or aspect with aggregated
// sentiment and mentions. Name is the merge key (lowercased).
type Entity struct {
	Name           string      `json:"name"`
	Sentiment      float64     `json:"sentiment"`
	MentionCount   int         `json:"mention_count"`
	Category       string      `json:"category,omitempty"`
	Description    string      `json:"description,omitempty"`
	RelatedReviews []ReviewRef `json:"related_reviews"`
}

// BatchResult holds the decoded entities for one prompt/response round trip.
// Discarded after merging.
type BatchResult struct {
	FoodItems []Entity `json:"food_items"`
	Drinks    []Entity `json:"drinks"`
	Aspects   []Entity `json:"aspects"`
}

// Result is the terminal aggregate of one analysis run.
type Result struct {
	FoodItems      []Entity `json:"food_items"`
	Drinks         []Entity `json:"drinks"`
	Aspects        []Entity `json:"aspects"`
	TotalExtracted int      `json:"total_extracted"`
	TotalAspects   int      `json:"total_aspects"`
	BatchesFailed  int      `json:"batches_failed"`
}

// BatchEvent reports per-batch progress to an optional observer.
type BatchEvent struct {
	Batch        int    `json:"batch"`
	TotalBatches int    `json:"total_batches"`
	Reviews      int    `json:"reviews"`
	Failed       bool   `json:"failed"`
	Err          string `json:"error,omitempty"`
}
