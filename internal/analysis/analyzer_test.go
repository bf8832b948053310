package analysis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"testing"

	"menulens/internal/llm"
)

func quietLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func makeReviews(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("review number %d", i)
	}
	return out
}

func TestAnalyzer_TwoBatchesMerge(t *testing.T) {
	fake := llm.NewFakeClient(
		llm.FakeCall{Text: `{"food_items":[{"name":"salmon sushi","mention_count":3,"sentiment":0.8,"related_reviews":[{"review_index":0},{"review_index":3},{"review_index":7}]}]}`},
		llm.FakeCall{Text: `{"food_items":[{"name":"Salmon Sushi","mention_count":2,"sentiment":0.6,"related_reviews":[{"review_index":16},{"review_index":20}]}]}`},
	)
	az := &Analyzer{LLM: fake, BatchSize: 15, Logger: quietLogger()}
	res := az.Run(context.Background(), "Miku", makeReviews(25))

	if fake.Calls() != 2 {
		t.Fatalf("gateway calls = %d, want 2 (25 reviews, batch 15)", fake.Calls())
	}
	if len(res.FoodItems) != 1 {
		t.Fatalf("food_items = %d, want 1", len(res.FoodItems))
	}
	got := res.FoodItems[0]
	if got.Name != "salmon sushi" || got.MentionCount != 5 {
		t.Fatalf("merged entity = %+v, want salmon sushi x5", got)
	}
	if !almostEqual(got.Sentiment, 0.7) {
		t.Fatalf("sentiment = %v, want 0.7", got.Sentiment)
	}
	if len(got.RelatedReviews) != 5 {
		t.Fatalf("related_reviews = %d, want 5", len(got.RelatedReviews))
	}
	// Attribution text from the second batch must come from that window.
	last := got.RelatedReviews[4]
	if last.ReviewIndex != 20 || last.ReviewText != "review number 20" {
		t.Fatalf("attribution = %+v, want absolute index 20 with its text", last)
	}
	if res.BatchesFailed != 0 {
		t.Fatalf("batches_failed = %d, want 0", res.BatchesFailed)
	}
}

func TestAnalyzer_FailedBatchIsSkipped(t *testing.T) {
	fake := llm.NewFakeClient(
		llm.FakeCall{Err: llm.NewPermanentError(errors.New("invalid request"))},
		llm.FakeCall{Text: `{"drinks":[{"name":"sake","mention_count":1,"sentiment":0.7}]}`},
	)
	az := &Analyzer{LLM: fake, BatchSize: 5, Logger: quietLogger()}
	res := az.Run(context.Background(), "Miku", makeReviews(10))

	if res.BatchesFailed != 1 {
		t.Fatalf("batches_failed = %d, want 1", res.BatchesFailed)
	}
	if len(res.Drinks) != 1 || res.Drinks[0].Name != "sake" {
		t.Fatalf("drinks = %+v, want result from surviving batch", res.Drinks)
	}
}

func TestAnalyzer_MalformedBatchIsSkipped(t *testing.T) {
	fake := llm.NewFakeClient(
		llm.FakeCall{Text: "I'm sorry, I can't produce JSON today"},
		llm.FakeCall{Text: `{"aspects":[{"name":"value","mention_count":2,"sentiment":0.3}]}`},
	)
	az := &Analyzer{LLM: fake, BatchSize: 3, Logger: quietLogger()}
	res := az.Run(context.Background(), "", makeReviews(6))

	if res.BatchesFailed != 1 {
		t.Fatalf("batches_failed = %d, want 1", res.BatchesFailed)
	}
	if len(res.Aspects) != 1 {
		t.Fatalf("aspects = %d, want 1", len(res.Aspects))
	}
}

func TestAnalyzer_EmptyInputSkipsGateway(t *testing.T) {
	fake := llm.NewFakeClient()
	az := &Analyzer{LLM: fake, Logger: quietLogger()}
	res := az.Run(context.Background(), "Miku", nil)

	if fake.Calls() != 0 {
		t.Fatalf("gateway calls = %d, want 0 for empty input", fake.Calls())
	}
	if res.FoodItems == nil || res.Drinks == nil || res.Aspects == nil {
		t.Fatalf("empty result lists must be non-nil: %+v", res)
	}
	if res.TotalExtracted != 0 || res.TotalAspects != 0 {
		t.Fatalf("totals = %d/%d, want 0/0", res.TotalExtracted, res.TotalAspects)
	}
}

func TestAnalyzer_AllBatchesFailedStillReturnsResult(t *testing.T) {
	fake := llm.NewFakeClient(llm.FakeCall{Err: errors.New("gateway down")})
	az := &Analyzer{LLM: fake, BatchSize: 2, Logger: quietLogger()}
	res := az.Run(context.Background(), "Miku", makeReviews(6))

	if res.BatchesFailed != 3 {
		t.Fatalf("batches_failed = %d, want 3", res.BatchesFailed)
	}
	if len(res.FoodItems)+len(res.Drinks)+len(res.Aspects) != 0 {
		t.Fatalf("expected empty entity lists, got %+v", res)
	}
}

func TestAnalyzer_TruncatesToRequestedMax(t *testing.T) {
	fake := llm.NewFakeClient(llm.FakeCall{Text: `{"food_items":[
		{"name":"a","mention_count":1,"sentiment":0.1},
		{"name":"b","mention_count":5,"sentiment":0.2},
		{"name":"c","mention_count":3,"sentiment":0.3}
	]}`})
	az := &Analyzer{LLM: fake, MaxItems: 2, Logger: quietLogger()}
	res := az.Run(context.Background(), "", makeReviews(2))

	if len(res.FoodItems) != 2 {
		t.Fatalf("food_items = %d, want 2", len(res.FoodItems))
	}
	if res.FoodItems[0].Name != "b" || res.FoodItems[1].Name != "c" {
		t.Fatalf("top2 = %q, %q; want b, c", res.FoodItems[0].Name, res.FoodItems[1].Name)
	}
}

func TestAnalyzer_EmitsBatchEvents(t *testing.T) {
	fake := llm.NewFakeClient(
		llm.FakeCall{Text: `{}`},
		llm.FakeCall{Err: errors.New("boom")},
	)
	var events []BatchEvent
	az := &Analyzer{
		LLM: fake, BatchSize: 2, Logger: quietLogger(),
		OnBatch: func(ev BatchEvent) { events = append(events, ev) },
	}
	_ = az.Run(context.Background(), "", makeReviews(4))

	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if events[0].Failed || !events[1].Failed {
		t.Fatalf("events = %+v, want second failed", events)
	}
	if events[1].TotalBatches != 2 || events[1].Batch != 2 {
		t.Fatalf("event numbering off: %+v", events[1])
	}
}
