package analysis

// Batch is a contiguous window of the review list. Start is the absolute
// index of Reviews[0] in the full input.
type Batch struct {
	Start   int
	Reviews []string
}

// Split partitions reviews into contiguous, non-overlapping windows of at
// most batchSize, in original order. The last window may be shorter.
// batchSize <= 0 is treated as one window covering everything.
func Split(reviews []string, batchSize int) []Batch {
	if len(reviews) == 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = len(reviews)
	}
	batches := make([]Batch, 0, (len(reviews)+batchSize-1)/batchSize)
	for i := 0; i < len(reviews); i += batchSize {
		end := i + batchSize
		if end > len(reviews) {
			end = len(reviews)
		}
		batches = append(batches, Batch{Start: i, Reviews: reviews[i:end]})
	}
	return batches
}
