package llm

import (
	"context"
	"sync"
)

// FakeCall is one scripted exchange for FakeClient.
type FakeCall struct {
	Text string
	Err  error
}

// FakeClient replays scripted responses in order, for offline use and tests.
// After the script is exhausted it keeps returning the last entry.
type FakeClient struct {
	mu      sync.Mutex
	script  []FakeCall
	n       int
	Prompts []string
}

func NewFakeClient(script ...FakeCall) *FakeClient {
	if len(script) == 0 {
		script = []FakeCall{{Text: "{}"}}
	}
	return &FakeClient{script: script}
}

func (f *FakeClient) Name() string { return "FakeLLM" }
func (f *FakeClient) Close() error { return nil }

// Calls reports how many Generate calls were made.
func (f *FakeClient) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.n
}

func (f *FakeClient) Generate(ctx context.Context, req Request) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.n
	if i >= len(f.script) {
		i = len(f.script) - 1
	}
	f.n++
	f.Prompts = append(f.Prompts, req.Prompt)
	call := f.script[i]
	return call.Text, call.Err
}
