package handler

import (
	"crypto/rand"
	"encoding/hex"
	"sync"

	"menulens/internal/analysis"
)

// RunRegistry tracks in-flight analysis runs and fans batch-progress events
// out to websocket subscribers. A run is removed once finished.
type RunRegistry struct {
	mu   sync.RWMutex
	subs map[string][]chan analysis.BatchEvent
	live map[string]bool
}

func NewRunRegistry() *RunRegistry {
	return &RunRegistry{
		subs: make(map[string][]chan analysis.BatchEvent),
		live: make(map[string]bool),
	}
}

// NewRunID returns a fresh random run identifier.
func NewRunID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return "run-" + hex.EncodeToString(b)
}

// Begin marks a run as live so late subscribers can tell "still running"
// from "never existed".
func (r *RunRegistry) Begin(runID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.live[runID] = true
}

// Live reports whether a run is currently in flight.
func (r *RunRegistry) Live(runID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.live[runID]
}

// Subscribe returns a channel of batch events for runID plus a cancel
// function. The channel is closed when the run finishes.
func (r *RunRegistry) Subscribe(runID string) (<-chan analysis.BatchEvent, func()) {
	ch := make(chan analysis.BatchEvent, 32)
	r.mu.Lock()
	r.subs[runID] = append(r.subs[runID], ch)
	r.mu.Unlock()

	cancel := func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		chans := r.subs[runID]
		for i, c := range chans {
			if c == ch {
				r.subs[runID] = append(chans[:i], chans[i+1:]...)
				close(c)
				break
			}
		}
	}
	return ch, cancel
}

// Publish delivers one event to every subscriber. Slow subscribers drop
// events rather than stall the analysis loop.
func (r *RunRegistry) Publish(runID string, ev analysis.BatchEvent) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ch := range r.subs[runID] {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Finish closes all subscriber channels and forgets the run.
func (r *RunRegistry) Finish(runID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ch := range r.subs[runID] {
		close(ch)
	}
	delete(r.subs, runID)
	delete(r.live, runID)
}
