package analysis

import (
	"context"
	"log"

	"menulens/internal/llm"
)

const (
	extractionTemperature = 0.3
	extractionMaxTokens   = 4000

	defaultBatchSize  = 20
	defaultMaxItems   = 50
	defaultMaxAspects = 12
)

// Analyzer drives the full run: split -> prompt -> gateway -> parse ->
// normalize -> merge, then rank/truncate. Batches are processed strictly
// sequentially; a failed batch is logged, counted and skipped, never fatal.
type Analyzer struct {
	LLM        llm.Client
	Mode       Mode
	BatchSize  int
	MaxItems   int
	MaxAspects int

	// Logger defaults to log.Default(). OnBatch, when set, receives one
	// event per processed batch (used by the watch endpoint).
	Logger  *log.Logger
	OnBatch func(BatchEvent)
}

// Run analyzes all reviews for one restaurant and always returns a Result,
// possibly sparse: every recoverable failure is swallowed at the batch
// boundary. Zero reviews short-circuit without touching the gateway.
func (a *Analyzer) Run(ctx context.Context, restaurant string, reviews []string) Result {
	logger := a.Logger
	if logger == nil {
		logger = log.Default()
	}
	batchSize := a.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	acc := NewAccumulator()
	failed := 0

	batches := Split(reviews, batchSize)
	logger.Printf("analysis: %d reviews in %d batches of <=%d", len(reviews), len(batches), batchSize)

	for i, b := range batches {
		ev := BatchEvent{Batch: i + 1, TotalBatches: len(batches), Reviews: len(b.Reviews)}
		if err := a.runBatch(ctx, b, restaurant, acc); err != nil {
			failed++
			ev.Failed = true
			ev.Err = err.Error()
			logger.Printf("analysis: batch %d/%d failed: %v", i+1, len(batches), err)
		}
		if a.OnBatch != nil {
			a.OnBatch(ev)
		}
	}

	maxItems := a.MaxItems
	if maxItems <= 0 {
		maxItems = defaultMaxItems
	}
	maxAspects := a.MaxAspects
	if maxAspects <= 0 {
		maxAspects = defaultMaxAspects
	}

	res := Result{
		FoodItems:     Rank(acc.FoodItems(), maxItems),
		Drinks:        Rank(acc.Drinks(), maxItems),
		Aspects:       Rank(acc.Aspects(), maxAspects),
		BatchesFailed: failed,
	}
	res.TotalExtracted = len(res.FoodItems) + len(res.Drinks)
	res.TotalAspects = len(res.Aspects)
	logger.Printf("analysis: discovered %d food + %d drinks + %d aspects (%d batches failed)",
		len(res.FoodItems), len(res.Drinks), len(res.Aspects), failed)
	return res
}

func (a *Analyzer) runBatch(ctx context.Context, b Batch, restaurant string, acc *Accumulator) error {
	prompt := BuildPrompt(b, restaurant, a.Mode)
	raw, err := a.LLM.Generate(ctx, llm.Request{
		Prompt:          prompt,
		Temperature:     extractionTemperature,
		MaxOutputTokens: extractionMaxTokens,
	})
	if err != nil {
		return err
	}
	br, err := DecodeBatch(raw)
	if err != nil {
		return err
	}
	br = AttachReviewText(br, b)
	acc.MergeBatch(Normalize(br))
	return nil
}
