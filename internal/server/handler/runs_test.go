package handler

import (
	"testing"
	"time"

	"menulens/internal/analysis"
)

func TestRunRegistry_PublishAndFinish(t *testing.T) {
	r := NewRunRegistry()
	runID := NewRunID()
	r.Begin(runID)
	if !r.Live(runID) {
		t.Fatal("run should be live after Begin")
	}

	ch, cancel := r.Subscribe(runID)
	defer cancel()

	r.Publish(runID, analysis.BatchEvent{Batch: 1, TotalBatches: 2})
	select {
	case ev := <-ch:
		if ev.Batch != 1 {
			t.Fatalf("event = %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}

	r.Finish(runID)
	select {
	case _, ok := <-ch:
		if ok {
			t.Fatal("expected closed channel after Finish")
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed after Finish")
	}
	if r.Live(runID) {
		t.Fatal("run still live after Finish")
	}
}

func TestRunRegistry_SlowSubscriberDropsEvents(t *testing.T) {
	r := NewRunRegistry()
	r.Begin("run-slow")
	_, cancel := r.Subscribe("run-slow")
	defer cancel()

	// Publishing far more than the channel buffers must never block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			r.Publish("run-slow", analysis.BatchEvent{Batch: i})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a slow subscriber")
	}
}

func TestRunRegistry_CancelAfterFinishIsSafe(t *testing.T) {
	r := NewRunRegistry()
	r.Begin("run-x")
	_, cancel := r.Subscribe("run-x")
	r.Finish("run-x")
	cancel() // must not double-close
}

func TestNewRunID_Unique(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	if a == b {
		t.Fatalf("ids collide: %s", a)
	}
}
