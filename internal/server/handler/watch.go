package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"menulens/internal/analysis"
)

const (
	watchWSWriteWait = 10 * time.Second
	watchWSPongWait  = 60 * time.Second
	watchWSPingEvery = (watchWSPongWait * 9) / 10
)

var watchWSUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

type watchWSOutbound struct {
	Type  string               `json:"type"`
	RunID string               `json:"runId,omitempty"`
	Event *analysis.BatchEvent `json:"event,omitempty"`
}

// HandleWatch streams per-batch progress events for one run over a
// websocket until the run finishes.
func (h *Handler) HandleWatch(w http.ResponseWriter, r *http.Request) {
	runID := strings.TrimSpace(r.URL.Query().Get("run_id"))
	if runID == "" {
		http.Error(w, "run_id is required", http.StatusBadRequest)
		return
	}

	conn, err := watchWSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	if err := conn.SetReadDeadline(time.Now().Add(watchWSPongWait)); err != nil {
		h.Logger.Printf("watch ws set read deadline failed: %v", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(watchWSPongWait))
	})

	// Reader goroutine: only pongs and client close matter.
	readerDone := make(chan struct{})
	go func() {
		defer close(readerDone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	events, cancel := h.Runs.Subscribe(runID)
	defer cancel()

	writeOut := func(out watchWSOutbound) bool {
		if err := conn.SetWriteDeadline(time.Now().Add(watchWSWriteWait)); err != nil {
			return false
		}
		return conn.WriteJSON(out) == nil
	}

	if !writeOut(watchWSOutbound{Type: "subscribed", RunID: runID}) {
		return
	}
	if !h.Runs.Live(runID) {
		// Already finished (or unknown); tell the client and stop.
		writeOut(watchWSOutbound{Type: "done", RunID: runID})
		return
	}

	ticker := time.NewTicker(watchWSPingEvery)
	defer ticker.Stop()

	for {
		select {
		case <-readerDone:
			return
		case <-ticker.C:
			if err := conn.SetWriteDeadline(time.Now().Add(watchWSWriteWait)); err != nil {
				return
			}
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case ev, ok := <-events:
			if !ok {
				writeOut(watchWSOutbound{Type: "done", RunID: runID})
				return
			}
			if !writeOut(watchWSOutbound{Type: "batch", RunID: runID, Event: &ev}) {
				return
			}
		}
	}
}
