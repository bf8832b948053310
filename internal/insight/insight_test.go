package insight

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"menulens/internal/analysis"
	"menulens/internal/llm"
)

func testResult() analysis.Result {
	return analysis.Result{
		FoodItems: []analysis.Entity{{Name: "salmon sushi", Sentiment: 0.8, MentionCount: 5}},
		Aspects:   []analysis.Entity{{Name: "service speed", Sentiment: -0.2, MentionCount: 3}},
	}
}

func quiet() *log.Logger { return log.New(io.Discard, "", 0) }

func TestGenerate_DecodesInsights(t *testing.T) {
	fake := llm.NewFakeClient(llm.FakeCall{Text: "```json\n" + `{
		"summary": "Sushi is a strength.",
		"strengths": ["salmon sushi praised"],
		"concerns": ["service speed complaints"],
		"recommendations": [{"priority":"high","action":"expand sushi menu","reason":"demand","evidence":"5 mentions"}]
	}` + "\n```"})
	gen := &Generator{LLM: fake, Logger: quiet()}

	out, err := gen.Generate(context.Background(), testResult(), RoleChef, "Miku")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if out.Summary != "Sushi is a strength." || len(out.Recommendations) != 1 {
		t.Fatalf("insights = %+v", out)
	}
	// The analysis data must travel in the prompt.
	if !strings.Contains(fake.Prompts[0], "salmon sushi") {
		t.Fatalf("prompt missing analysis data")
	}
	if !strings.Contains(fake.Prompts[0], "CHEF") {
		t.Fatalf("prompt missing role focus")
	}
}

func TestGenerate_FallbackOnGatewayError(t *testing.T) {
	fake := llm.NewFakeClient(llm.FakeCall{Err: errors.New("gateway down")})
	gen := &Generator{LLM: fake, Logger: quiet()}

	out, err := gen.Generate(context.Background(), testResult(), RoleManager, "")
	if err != nil {
		t.Fatalf("fallback path must not error, got %v", err)
	}
	if !strings.Contains(out.Summary, "manager") {
		t.Fatalf("fallback summary = %q", out.Summary)
	}
	if len(out.Recommendations) == 0 {
		t.Fatal("fallback must carry a recommendation")
	}
}

func TestGenerate_FallbackOnMalformedJSON(t *testing.T) {
	fake := llm.NewFakeClient(llm.FakeCall{Text: "sorry, no JSON today"})
	gen := &Generator{LLM: fake, Logger: quiet()}

	out, err := gen.Generate(context.Background(), testResult(), RoleChef, "")
	if err != nil {
		t.Fatalf("fallback path must not error, got %v", err)
	}
	if !strings.Contains(out.Summary, "chef") {
		t.Fatalf("fallback summary = %q", out.Summary)
	}
}

func TestGenerate_UnknownRole(t *testing.T) {
	gen := &Generator{LLM: llm.NewFakeClient(), Logger: quiet()}
	_, err := gen.Generate(context.Background(), testResult(), Role("waiter"), "")
	if err == nil {
		t.Fatal("unknown role must error")
	}
}
